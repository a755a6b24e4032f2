package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// manualEntryText is served whenever the posting cannot be fetched or parsed.
// Scraping is best-effort: a blocked or odd page is not an error, the caller
// just has to paste the description by hand.
const manualEntryText = "Unable to automatically fetch job description. Please enter the job description manually or try a different job posting link."

// minUsefulDescription is the length below which stripped page text is
// considered nav-and-footer noise rather than an actual job description.
const minUsefulDescription = 200

// ScrapeResult is the outcome of one posting fetch.
type ScrapeResult struct {
	Description         string `json:"description"`
	RequiresManualEntry bool   `json:"requires_manual_entry,omitempty"`
}

type ScraperService interface {
	FetchJobDescription(ctx context.Context, jobURL string) (ScrapeResult, error)
}

type scraperService struct {
	httpClient *http.Client
	userAgent  string
}

func NewScraperService(timeout time.Duration, userAgent string) ScraperService {
	return &scraperService{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// FetchJobDescription retrieves and strips a job posting page. Only an invalid
// URL is an error; every fetch-side failure degrades to a manual-entry result.
func (s *scraperService) FetchJobDescription(ctx context.Context, jobURL string) (ScrapeResult, error) {
	parsed, err := url.Parse(jobURL)
	if err != nil || parsed.Scheme == "" {
		return ScrapeResult{}, fmt.Errorf("invalid URL provided")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jobURL, nil)
	if err != nil {
		return ScrapeResult{}, fmt.Errorf("invalid URL provided")
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("⚠️ Request error for %s: %v", jobURL, err)
		return manualEntry(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ Posting fetch returned status %d for %s", resp.StatusCode, jobURL)
		return manualEntry(), nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return manualEntry(), nil
	}

	text := stripHTML(string(body))
	if len(text) < minUsefulDescription {
		return manualEntry(), nil
	}

	return ScrapeResult{Description: text}, nil
}

func manualEntry() ScrapeResult {
	return ScrapeResult{Description: manualEntryText, RequiresManualEntry: true}
}

// stripHTML reduces a page to its text content: script/style blocks removed
// with their contents, every other tag dropped, whitespace collapsed.
func stripHTML(html string) string {
	html = removeTagAndContent(html, "script")
	html = removeTagAndContent(html, "style")

	var result strings.Builder
	inTag := false
	for _, char := range html {
		if char == '<' {
			inTag = true
			continue
		}
		if char == '>' {
			inTag = false
			result.WriteRune(' ')
			continue
		}
		if !inTag {
			result.WriteRune(char)
		}
	}

	return strings.Join(strings.Fields(result.String()), " ")
}

func removeTagAndContent(html, tag string) string {
	openTag := "<" + tag
	closeTag := "</" + tag + ">"

	for {
		startIdx := strings.Index(html, openTag)
		if startIdx == -1 {
			break
		}
		endIdx := strings.Index(html[startIdx:], closeTag)
		if endIdx == -1 {
			break
		}
		endIdx += startIdx + len(closeTag)
		html = html[:startIdx] + html[endIdx:]
	}

	return html
}
