package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Dhruvrana8/ResumeMatchAI/internal/models"
	"github.com/Dhruvrana8/ResumeMatchAI/internal/repositories"
	"github.com/Dhruvrana8/ResumeMatchAI/internal/services"
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
	index        services.AnalysisIndex // nil when the similarity lookup is off
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository, index services.AnalysisIndex) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
		index:        index,
	}
}

// HandleGetResult handles GET /result/:id.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	response := models.ResultResponse{
		ID:     analysis.ID.String(),
		Status: string(analysis.Status),
	}

	if analysis.Status == models.StatusCompleted && analysis.Score != nil {
		data := &models.AnalysisData{
			Score:     *analysis.Score,
			Narrative: analysis.Narrative,
		}
		if analysis.Grade != nil {
			data.Grade = *analysis.Grade
		}
		if analysis.PassRate != nil {
			data.PassRate = *analysis.PassRate
		}
		if analysis.ReportJSON != nil {
			data.Report = json.RawMessage(*analysis.ReportJSON)
		}
		response.Result = data
	}

	if analysis.Status == models.StatusFailed {
		response.ErrorMessage = analysis.ErrorMessage
	}

	return c.JSON(response)
}

// HandleDeleteResult handles DELETE /result/:id: removes the analysis row
// and, when the similarity lookup is configured, its stored vector.
func (h *ResultHandler) HandleDeleteResult(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	if _, err := h.analysisRepo.FindByID(analysisID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	if err := h.analysisRepo.Delete(analysisID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete analysis",
		})
	}

	if h.index != nil {
		if err := h.index.DeleteAnalysis(c.Context(), analysisID); err != nil {
			// Stale vectors are filtered out at lookup time, so the row
			// deletion stands.
			log.Printf("⚠️  Warning: Failed to delete analysis vector %s: %v\n", analysisID, err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
