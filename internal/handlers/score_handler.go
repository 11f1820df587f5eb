package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Dhruvrana8/ResumeMatchAI/internal/ats"
	"github.com/Dhruvrana8/ResumeMatchAI/internal/models"
)

type ScoreHandler struct {
	scorer *ats.Scorer
}

func NewScoreHandler(scorer *ats.Scorer) *ScoreHandler {
	return &ScoreHandler{scorer: scorer}
}

// HandleScore handles POST /score: synchronous scoring of raw texts with no
// persistence. The full report goes straight back to the caller.
func (h *ScoreHandler) HandleScore(c *fiber.Ctx) error {
	var req models.ScoreRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	report, err := h.scorer.Score(req.JobDescription, req.ResumeText)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, ats.ErrEmptyJobDescription) ||
			errors.Is(err, ats.ErrJobDescriptionTooLong) ||
			errors.Is(err, ats.ErrEmptyResume) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
