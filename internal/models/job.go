package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// JobDetails describes one job posting supplied by the caller.
type JobDetails struct {
	JobTitle       string `json:"job_title"`
	CompanyName    string `json:"company_name"`
	JobDescription string `json:"job_description"`
	JobLink        string `json:"job_link"`
}

// CoerceJobDetails parses the caller's job_details payload, which may be a JSON
// array, a single JSON object, or a bare URL string. The result is always a list.
func CoerceJobDetails(raw string) ([]JobDetails, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("no job details provided")
	}

	var list []JobDetails
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		if len(list) == 0 {
			return nil, fmt.Errorf("job details list is empty")
		}
		return list, nil
	}

	var single JobDetails
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		return []JobDetails{single}, nil
	}

	// Bare string: treat it as a job link.
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return []JobDetails{{JobLink: raw}}, nil
	}

	return nil, fmt.Errorf("invalid job details payload")
}

// Language is one supported output language for letter generation.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguages lists the languages cover letters and email replies can be
// generated in.
func SupportedLanguages() []Language {
	return []Language{
		{Code: "en", Name: "English"},
		{Code: "es", Name: "Spanish (Español)"},
		{Code: "fr", Name: "French (Français)"},
		{Code: "de", Name: "German (Deutsch)"},
		{Code: "zh", Name: "Chinese (中文)"},
		{Code: "ja", Name: "Japanese (日本語)"},
		{Code: "pt", Name: "Portuguese (Português)"},
		{Code: "ru", Name: "Russian (Русский)"},
		{Code: "ar", Name: "Arabic (العربية)"},
	}
}
