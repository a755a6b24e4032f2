package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hxndev/resume-copilot/internal/services"
)

type LearningHandler struct {
	learning services.LearningService
}

func NewLearningHandler(learning services.LearningService) *LearningHandler {
	return &LearningHandler{learning: learning}
}

type recommendationsRequest struct {
	Skills []string `json:"skills"`
}

// HandleRecommendations handles POST /api/learning-recommendations
func (h *LearningHandler) HandleRecommendations(c *fiber.Ctx) error {
	var req recommendationsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	return respond(c, h.learning.Recommendations(c.Context(), req.Skills))
}

type learningPlanRequest struct {
	Skill string `json:"skill"`
}

// HandleLearningPlan handles POST /api/learning-plan
func (h *LearningHandler) HandleLearningPlan(c *fiber.Ctx) error {
	var req learningPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if req.Skill == "" {
		return badRequest(c, "No skill provided")
	}

	return respond(c, h.learning.DetailedPlan(c.Context(), req.Skill))
}
