package services

import (
	"fmt"
	"net/url"
	"strings"
)

// maxJobLinkLength is the ceiling for non-URL link text sent to the model.
const maxJobLinkLength = 50

// ShortenJobLink reduces a job link to a token-cheap form before it is
// embedded in a prompt. Full URLs collapse to their domain; anything else is
// truncated with a visible marker. The original value is restored after the
// model responds.
func ShortenJobLink(link string) string {
	if link == "" {
		return ""
	}
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		if host := hostOf(link); host != "" {
			return fmt.Sprintf("Link from %s", host)
		}
	}
	if len(link) > maxJobLinkLength {
		return Truncate(link, maxJobLinkLength)
	}
	return link
}

// RestoreJobLinks maps the model's echoed job_link values back to the original
// full links. Policy, in order: positional (the model kept the input order),
// exact match of the echoed shortened form, then host match for paraphrased
// echoes. Entries that match nothing keep the model's value — never fabricate.
func RestoreJobLinks(jobs []any, originals []string, sent []string) {
	for i, el := range jobs {
		job, ok := el.(map[string]any)
		if !ok {
			continue
		}
		if i < len(originals) && originals[i] != "" {
			job["job_link"] = originals[i]
			continue
		}

		echoed, _ := job["job_link"].(string)
		if echoed == "" {
			continue
		}
		if restored, ok := matchEchoedLink(echoed, originals, sent); ok {
			job["job_link"] = restored
		}
	}
}

func matchEchoedLink(echoed string, originals []string, sent []string) (string, bool) {
	for j, s := range sent {
		if j < len(originals) && originals[j] != "" && echoed == s {
			return originals[j], true
		}
	}
	for _, original := range originals {
		host := hostOf(original)
		if host != "" && strings.Contains(echoed, host) {
			return original, true
		}
	}
	return "", false
}

func hostOf(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return parsed.Host
}
