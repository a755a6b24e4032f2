package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hxndev/resume-copilot/internal/models"
	"hxndev/resume-copilot/internal/services"
)

type LetterHandler struct {
	letters services.LetterService
}

func NewLetterHandler(letters services.LetterService) *LetterHandler {
	return &LetterHandler{letters: letters}
}

type coverLetterRequest struct {
	models.JobDetails
	CustomInstruction string `json:"custom_instruction"`
	Language          string `json:"language"`
}

// HandleCoverLetter handles POST /api/cover-letter
func (h *LetterHandler) HandleCoverLetter(c *fiber.Ctx) error {
	var req coverLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if req.JobTitle == "" && req.JobLink == "" {
		return badRequest(c, "Missing job details")
	}

	if req.Language == "" {
		req.Language = "en"
	}

	return respond(c, h.letters.CoverLetter(c.Context(), req.JobDetails, req.CustomInstruction, req.Language))
}

// HandleMotivationalLetter handles POST /api/motivational-letter
func (h *LetterHandler) HandleMotivationalLetter(c *fiber.Ctx) error {
	var req models.JobDetails
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if req.JobTitle == "" && req.CompanyName == "" {
		return badRequest(c, "Missing job details")
	}

	return respond(c, h.letters.MotivationalLetter(c.Context(), req))
}

type emailReplyRequest struct {
	EmailContent string `json:"email_content"`
	ReplyTone    string `json:"reply_tone"`
	Language     string `json:"language"`
}

// HandleEmailReply handles POST /api/email-reply
func (h *LetterHandler) HandleEmailReply(c *fiber.Ctx) error {
	var req emailReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if req.EmailContent == "" {
		return badRequest(c, "No email content provided")
	}

	if req.ReplyTone == "" {
		req.ReplyTone = "professional"
	}
	if req.Language == "" {
		req.Language = "en"
	}

	return respond(c, h.letters.EmailReply(c.Context(), req.EmailContent, req.ReplyTone, req.Language))
}

// HandleSupportedLanguages handles GET /api/supported-languages
func (h *LetterHandler) HandleSupportedLanguages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"languages": models.SupportedLanguages(),
	})
}
