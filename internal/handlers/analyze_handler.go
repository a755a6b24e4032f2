package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hxndev/resume-copilot/internal/models"
	"hxndev/resume-copilot/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
	scraper  services.ScraperService
	form     resumeForm
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	scraper services.ScraperService,
	parser services.DocumentParserService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		scraper:  scraper,
		form:     resumeForm{parser: parser, maxFileSize: maxFileSize},
	}
}

// HandleAnalyze handles POST /api/analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumeContent, message := h.form.extractText(c)
	if message != "" {
		return badRequest(c, message)
	}

	rawJobDetails := c.FormValue("job_details")
	if rawJobDetails == "" {
		return badRequest(c, "No job details provided")
	}

	jobs, err := models.CoerceJobDetails(rawJobDetails)
	if err != nil {
		return badRequest(c, err.Error())
	}

	customInstructions := c.FormValue("custom_instructions")

	return respond(c, h.analyzer.AnalyzeResume(c.Context(), resumeContent, jobs, customInstructions))
}

// HandleReviewResume handles POST /api/review-resume: the posting is scraped
// from the supplied link before the review runs.
func (h *AnalyzeHandler) HandleReviewResume(c *fiber.Ctx) error {
	resumeContent, message := h.form.extractText(c)
	if message != "" {
		return badRequest(c, message)
	}

	jobLink := c.FormValue("job_link")
	if jobLink == "" {
		return badRequest(c, "No job link provided")
	}

	scraped, err := h.scraper.FetchJobDescription(c.Context(), jobLink)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if scraped.RequiresManualEntry {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":               false,
			"error":                 scraped.Description,
			"requires_manual_entry": true,
		})
	}

	customInstructions := c.FormValue("custom_instructions")

	return respond(c, h.analyzer.ReviewResume(c.Context(), resumeContent, scraped.Description, customInstructions))
}

// HandleReviewResumeManual handles POST /api/review-resume-manual with a
// pasted job description.
func (h *AnalyzeHandler) HandleReviewResumeManual(c *fiber.Ctx) error {
	resumeContent, message := h.form.extractText(c)
	if message != "" {
		return badRequest(c, message)
	}

	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return badRequest(c, "No job description provided")
	}

	customInstructions := c.FormValue("custom_instructions")

	return respond(c, h.analyzer.ReviewResume(c.Context(), resumeContent, jobDescription, customInstructions))
}
