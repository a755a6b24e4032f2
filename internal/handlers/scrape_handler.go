package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hxndev/resume-copilot/internal/services"
)

type ScrapeHandler struct {
	scraper services.ScraperService
}

func NewScrapeHandler(scraper services.ScraperService) *ScrapeHandler {
	return &ScrapeHandler{scraper: scraper}
}

type scrapeJobRequest struct {
	JobLink string `json:"job_link"`
}

// HandleScrapeJob handles POST /api/scrape-job. Fetch failures are successful
// responses flagged requires_manual_entry; only a malformed URL is an error.
func (h *ScrapeHandler) HandleScrapeJob(c *fiber.Ctx) error {
	var req scrapeJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if req.JobLink == "" {
		return badRequest(c, "No job link provided")
	}

	result, err := h.scraper.FetchJobDescription(c.Context(), req.JobLink)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"success":               true,
		"description":           result.Description,
		"requires_manual_entry": result.RequiresManualEntry,
	})
}
