package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Dhruvrana8/ResumeMatchAI/internal/models"
	"github.com/Dhruvrana8/ResumeMatchAI/internal/repositories"
	"github.com/Dhruvrana8/ResumeMatchAI/internal/services"
)

const similarLimit = 5

type SimilarHandler struct {
	analysisRepo repositories.AnalysisRepository
	index        services.AnalysisIndex // nil when the lookup is not configured
}

func NewSimilarHandler(analysisRepo repositories.AnalysisRepository, index services.AnalysisIndex) *SimilarHandler {
	return &SimilarHandler{
		analysisRepo: analysisRepo,
		index:        index,
	}
}

// HandleGetSimilar handles GET /similar/:id: analyses whose resume content
// is closest to the given one, by stored embedding.
func (h *SimilarHandler) HandleGetSimilar(c *fiber.Ctx) error {
	if h.index == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Similarity lookup is not configured",
		})
	}

	analysisID, err := uuid.Parse(c.Params("id"))
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
	if analysis.Status != models.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Analysis is not completed yet",
		})
	}

	neighbors, err := h.index.SearchSimilarTo(c.Context(), analysisID, similarLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search similar analyses",
		})
	}

	// The database row is authoritative for score and grade; drop neighbors
	// whose analysis has since been removed or re-queued.
	ids := make([]uuid.UUID, 0, len(neighbors))
	for _, n := range neighbors {
		if id, err := uuid.Parse(n.AnalysisID); err == nil {
			ids = append(ids, id)
		}
	}

	rows, err := h.analysisRepo.FindCompletedByIDs(ids)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load similar analyses",
		})
	}

	byID := make(map[string]*models.Analysis, len(rows))
	for i := range rows {
		byID[rows[i].ID.String()] = &rows[i]
	}

	results := make([]models.SimilarAnalysisResponse, 0, len(neighbors))
	for _, n := range neighbors {
		row, ok := byID[n.AnalysisID]
		if !ok || row.Score == nil || row.Grade == nil {
			continue
		}
		results = append(results, models.SimilarAnalysisResponse{
			AnalysisID: n.AnalysisID,
			Similarity: n.Similarity,
			Score:      *row.Score,
			Grade:      *row.Grade,
		})
	}

	return c.JSON(fiber.Map{
		"analysis_id": analysisID.String(),
		"similar":     results,
	})
}
