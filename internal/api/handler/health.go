package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// ReadyChecker reports whether a lazily-loaded dependency is usable.
type ReadyChecker interface {
	Ready(ctx context.Context) error
}

// HealthHandler reports service and dependency health.
type HealthHandler struct {
	model ReadyChecker
	data  ReadyChecker
}

func NewHealthHandler(model, data ReadyChecker) *HealthHandler {
	return &HealthHandler{
		model: model,
		data:  data,
	}
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	DataLoaded  bool   `json:"data_loaded"`
}

// Health GET /api/health - probes the model and catalog, triggering their
// first load if it has not happened yet.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	modelLoaded := h.model.Ready(c.Context()) == nil
	dataLoaded := h.data.Ready(c.Context()) == nil

	status := "healthy"
	if !modelLoaded || !dataLoaded {
		status = "unhealthy"
	}

	return c.JSON(HealthResponse{
		Status:      status,
		ModelLoaded: modelLoaded,
		DataLoaded:  dataLoaded,
	})
}
