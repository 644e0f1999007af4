package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/ajharbinger/answer-eval-api/internal/logger"
	"github.com/ajharbinger/answer-eval-api/internal/scoring"
	"github.com/ajharbinger/answer-eval-api/internal/services"
	"github.com/ajharbinger/answer-eval-api/internal/thresholds"
	"github.com/ajharbinger/answer-eval-api/pkg/config"
)

// SetupRoutes configures all API routes. The route path is the single
// explicit discriminant for request classification: health, batch, and
// single evaluation each have their own endpoint, decoded exactly once.
func SetupRoutes(r *gin.Engine, cfg *config.Config, log logger.Logger) error {
	// Build the threshold registry once; a malformed profile is a startup
	// failure, never a per-request one
	domains, err := config.LoadDomainProfiles(cfg.DomainProfilesPath)
	if err != nil {
		return fmt.Errorf("failed to load domain profiles: %w", err)
	}
	registry, err := thresholds.NewRegistryFromConfig(cfg, domains)
	if err != nil {
		return fmt.Errorf("failed to build threshold registry: %w", err)
	}

	// One scoring client handle, shared by all requests
	client := scoring.NewHTTPClient(cfg)

	svcs := services.NewServices(cfg, registry, client, log)

	evaluationHandler := NewEvaluationHandler(svcs.Evaluation, svcs.Batch)
	healthHandler := NewHealthHandler(svcs.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.GetHealth)
		v1.POST("/evaluate", evaluationHandler.EvaluateSingle)
		v1.POST("/evaluate/batch", evaluationHandler.EvaluateBatch)
	}

	return nil
}
