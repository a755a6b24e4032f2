package services

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractResumeTextPlainText(t *testing.T) {
	parser := NewDocumentParserService()

	text, err := parser.ExtractResumeText("resume.txt", []byte("Jane Doe\nBackend Engineer"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text != "Jane Doe\nBackend Engineer" {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestExtractResumeTextTruncatesLongResumes(t *testing.T) {
	parser := NewDocumentParserService()

	long := strings.Repeat("x", MaxResumeContentLength+500)
	text, err := parser.ExtractResumeText("resume.txt", []byte(long))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(text) != MaxResumeContentLength+len(TruncationMarker) {
		t.Errorf("Expected truncated length %d, got %d", MaxResumeContentLength+len(TruncationMarker), len(text))
	}
}

func TestExtractResumeTextUnsupportedFormat(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractResumeText("resume.docx", []byte("content"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractResumeTextInvalidUTF8(t *testing.T) {
	parser := NewDocumentParserService()

	if _, err := parser.ExtractResumeText("resume.txt", []byte{0xff, 0xfe, 0xfd}); err == nil {
		t.Error("Expected error for invalid UTF-8 text file")
	}
}

func TestExtractResumeTextCaseInsensitiveExtension(t *testing.T) {
	parser := NewDocumentParserService()

	if _, err := parser.ExtractResumeText("RESUME.TXT", []byte("content")); err != nil {
		t.Errorf("Uppercase extension should be accepted: %v", err)
	}
}
