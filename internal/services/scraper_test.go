package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestScraper() ScraperService {
	return NewScraperService(5*time.Second, "test-agent")
}

func TestFetchJobDescriptionSuccess(t *testing.T) {
	body := "<html><head><style>.a{color:red}</style><script>var x = 1;</script></head><body><h1>Backend Engineer</h1><p>" +
		strings.Repeat("We are hiring a Go engineer to build services. ", 10) +
		"</p></body></html>"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test-agent" {
			t.Errorf("Expected configured user agent, got %q", r.Header.Get("User-Agent"))
		}
		w.Write([]byte(body))
	}))
	defer server.Close()

	result, err := newTestScraper().FetchJobDescription(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.RequiresManualEntry {
		t.Fatal("Expected a scraped description")
	}
	if !strings.Contains(result.Description, "Backend Engineer") {
		t.Errorf("Description should contain page text: %s", result.Description)
	}
	if strings.Contains(result.Description, "var x") || strings.Contains(result.Description, "color:red") {
		t.Error("Script and style content should be stripped")
	}
	if strings.Contains(result.Description, "<") {
		t.Error("Tags should be stripped")
	}
}

func TestFetchJobDescriptionBlockedFallsBackToManual(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	result, err := newTestScraper().FetchJobDescription(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Blocked fetch should not error: %v", err)
	}
	if !result.RequiresManualEntry {
		t.Fatal("Expected manual entry flag")
	}
	if result.Description != manualEntryText {
		t.Errorf("Unexpected description: %s", result.Description)
	}
}

func TestFetchJobDescriptionTooShortFallsBackToManual(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>404</body></html>"))
	}))
	defer server.Close()

	result, err := newTestScraper().FetchJobDescription(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.RequiresManualEntry {
		t.Error("Near-empty pages should require manual entry")
	}
}

func TestFetchJobDescriptionInvalidURL(t *testing.T) {
	if _, err := newTestScraper().FetchJobDescription(context.Background(), "not a url"); err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestStripHTML(t *testing.T) {
	got := stripHTML("<div>Hello   <b>world</b></div><script>alert(1)</script>")
	if got != "Hello world" {
		t.Errorf("Unexpected stripped text: %q", got)
	}
}
