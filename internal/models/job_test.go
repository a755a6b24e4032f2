package models

import "testing"

func TestCoerceJobDetailsArray(t *testing.T) {
	jobs, err := CoerceJobDetails(`[{"job_title": "Engineer", "company_name": "Acme"}, {"job_link": "https://a.com/x"}]`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("Expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].JobTitle != "Engineer" || jobs[1].JobLink != "https://a.com/x" {
		t.Errorf("Unexpected jobs: %+v", jobs)
	}
}

func TestCoerceJobDetailsSingleObject(t *testing.T) {
	jobs, err := CoerceJobDetails(`{"job_title": "Engineer"}`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].JobTitle != "Engineer" {
		t.Errorf("Unexpected jobs: %+v", jobs)
	}
}

func TestCoerceJobDetailsBareLink(t *testing.T) {
	jobs, err := CoerceJobDetails("https://jobs.acme.com/postings/99")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].JobLink != "https://jobs.acme.com/postings/99" {
		t.Errorf("Unexpected jobs: %+v", jobs)
	}
}

func TestCoerceJobDetailsInvalid(t *testing.T) {
	if _, err := CoerceJobDetails("just some words"); err == nil {
		t.Error("Expected error for non-JSON non-URL input")
	}
	if _, err := CoerceJobDetails(""); err == nil {
		t.Error("Expected error for empty input")
	}
	if _, err := CoerceJobDetails("[]"); err == nil {
		t.Error("Expected error for empty list")
	}
}

func TestSupportedLanguagesIncludesEnglish(t *testing.T) {
	languages := SupportedLanguages()
	if len(languages) == 0 {
		t.Fatal("Expected a non-empty language list")
	}
	if languages[0].Code != "en" || languages[0].Name != "English" {
		t.Errorf("Expected English first, got %+v", languages[0])
	}
}
