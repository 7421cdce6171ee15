package handler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/moodflix/moodflix/internal/domain"
)

// Recommender is the ranking engine the handler delegates to.
type Recommender interface {
	Recommend(ctx context.Context, emotion string, limit int) ([]domain.Movie, error)
}

// RecommendHandler handles movie recommendation requests.
type RecommendHandler struct {
	engine Recommender
	logger *slog.Logger
}

// NewRecommendHandler creates a new RecommendHandler instance.
func NewRecommendHandler(engine Recommender, logger *slog.Logger) *RecommendHandler {
	return &RecommendHandler{
		engine: engine,
		logger: logger,
	}
}

// RecommendResponse is the ranked recommendation payload.
type RecommendResponse struct {
	Emotion         string           `json:"emotion"`
	Recommendations []map[string]any `json:"recommendations"`
}

// RecommendMovies GET /api/recommend-movies/:emotion - ranked movies for an emotion
func (h *RecommendHandler) RecommendMovies(c *fiber.Ctx) error {
	emotion := strings.TrimSpace(c.Params("emotion"))

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return domain.ErrInvalidLimit
		}
		limit = parsed
	}

	movies, err := h.engine.Recommend(c.Context(), emotion, limit)
	if err != nil {
		return err
	}

	recommendations := make([]map[string]any, 0, len(movies))
	for _, movie := range movies {
		recommendations = append(recommendations, movie.Fields())
	}

	return c.JSON(RecommendResponse{
		Emotion:         strings.ToLower(emotion),
		Recommendations: recommendations,
	})
}
