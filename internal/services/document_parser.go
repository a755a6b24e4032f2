package services

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat rejects anything that is not a PDF or plain-text
// resume before a single model token is spent.
var ErrUnsupportedFormat = fmt.Errorf("unsupported file format, please upload a PDF or TXT file")

type DocumentParserService interface {
	ExtractResumeText(filename string, data []byte) (string, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

// ExtractResumeText pulls plain text out of an uploaded resume. The result is
// truncated to the resume ceiling immediately so the large raw buffer can be
// released; extracted documents are the dominant memory cost per request.
func (p *documentParserService) ExtractResumeText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			return "", err
		}
		return truncateResume(text), nil
	case ".txt":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("text file is not valid UTF-8")
		}
		return truncateResume(string(data)), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

func truncateResume(text string) string {
	if len(text) > MaxResumeContentLength {
		log.Printf("📄 Truncating resume content from %d to %d chars", len(text), MaxResumeContentLength)
	}
	return Truncate(text, MaxResumeContentLength)
}
