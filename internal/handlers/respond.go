package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hxndev/resume-copilot/internal/models"
)

// respond serializes a task outcome: 200 with the flattened payload on
// success, 400 with the failure reason otherwise.
func respond(c *fiber.Ctx, outcome models.Outcome) error {
	status := fiber.StatusOK
	if !outcome.Success {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(outcome.JSON())
}

// badRequest rejects a request before any pipeline work happens.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
