package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hxndev/resume-copilot/internal/services"
)

type ATSHandler struct {
	ats  services.ATSService
	form resumeForm
}

func NewATSHandler(ats services.ATSService, parser services.DocumentParserService, maxFileSize int64) *ATSHandler {
	return &ATSHandler{
		ats:  ats,
		form: resumeForm{parser: parser, maxFileSize: maxFileSize},
	}
}

// HandleATSCheck handles POST /api/ats-check
func (h *ATSHandler) HandleATSCheck(c *fiber.Ctx) error {
	resumeContent, message := h.form.extractText(c)
	if message != "" {
		return badRequest(c, message)
	}

	return respond(c, h.ats.CheckCompatibility(c.Context(), resumeContent))
}

// HandleOptimizeResume handles POST /api/optimize-resume
func (h *ATSHandler) HandleOptimizeResume(c *fiber.Ctx) error {
	resumeContent, message := h.form.extractText(c)
	if message != "" {
		return badRequest(c, message)
	}

	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return badRequest(c, "No job description provided")
	}

	return respond(c, h.ats.OptimizeSections(c.Context(), resumeContent, jobDescription))
}
