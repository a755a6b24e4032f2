package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hxndev/resume-copilot/internal/services"
)

// resumeForm extracts the uploaded resume's text from a multipart request.
// Every handler that accepts a resume funnels through here so format and size
// rules stay in one place. A non-empty message means the request was rejected.
type resumeForm struct {
	parser      services.DocumentParserService
	maxFileSize int64
}

func (f resumeForm) extractText(c *fiber.Ctx) (text, message string) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return "", "No resume file provided"
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".pdf" && ext != ".txt" {
		return "", "Invalid file format. Please upload PDF or TXT"
	}

	if fileHeader.Size > f.maxFileSize {
		return "", fmt.Sprintf("Resume file too large. Max size: %d bytes", f.maxFileSize)
	}

	data, err := readFile(fileHeader)
	if err != nil {
		return "", fmt.Sprintf("Error processing resume: %v", err)
	}

	text, err = f.parser.ExtractResumeText(fileHeader.Filename, data)
	if err != nil {
		return "", fmt.Sprintf("Error processing resume: %v", err)
	}
	return text, ""
}

func readFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
