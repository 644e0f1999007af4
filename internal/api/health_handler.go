package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ajharbinger/answer-eval-api/internal/services"
)

// HealthHandler handles health-check requests
type HealthHandler struct {
	health services.HealthService
}

// NewHealthHandler creates a new health handler with service injection
func NewHealthHandler(health services.HealthService) *HealthHandler {
	return &HealthHandler{
		health: health,
	}
}

// GetHealth probes the scoring capability with a synthetic evaluation and
// reports 200 when it is reachable, 503 otherwise
func (h *HealthHandler) GetHealth(c *gin.Context) {
	status := h.health.Check(c.Request.Context())

	statusText := "healthy"
	code := http.StatusOK
	if !status.Healthy {
		statusText = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":           statusText,
		"scoringAvailable": status.Healthy,
		"message":          status.Detail,
		"timestamp":        time.Now(),
	})
}
