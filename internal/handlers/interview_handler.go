package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hxndev/resume-copilot/internal/models"
	"hxndev/resume-copilot/internal/services"
)

type InterviewHandler struct {
	interview services.InterviewService
}

func NewInterviewHandler(interview services.InterviewService) *InterviewHandler {
	return &InterviewHandler{interview: interview}
}

// HandleInterviewQuestions handles POST /api/interview-questions
func (h *InterviewHandler) HandleInterviewQuestions(c *fiber.Ctx) error {
	var req models.JobDetails
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if req.JobTitle == "" {
		return badRequest(c, "No job title provided")
	}

	return respond(c, h.interview.GenerateQuestions(c.Context(), req))
}

type evaluateAnswersRequest struct {
	Answers []models.QuestionAnswer `json:"answers"`
}

// HandleEvaluateAnswers handles POST /api/evaluate-answers
func (h *InterviewHandler) HandleEvaluateAnswers(c *fiber.Ctx) error {
	var req evaluateAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if len(req.Answers) == 0 {
		return badRequest(c, "No answers provided")
	}

	return respond(c, h.interview.EvaluateAnswers(c.Context(), req.Answers))
}

type companyResearchRequest struct {
	CompanyName string `json:"company_name"`
}

// HandleCompanyResearch handles POST /api/company-research
func (h *InterviewHandler) HandleCompanyResearch(c *fiber.Ctx) error {
	var req companyResearchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	return respond(c, h.interview.CompanyResearch(c.Context(), req.CompanyName))
}

// HandleInterviewPrep handles POST /api/interview-prep
func (h *InterviewHandler) HandleInterviewPrep(c *fiber.Ctx) error {
	var req models.JobDetails
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if req.JobTitle == "" {
		return badRequest(c, "No job title provided")
	}

	return respond(c, h.interview.PrepareMaterials(c.Context(), req))
}
