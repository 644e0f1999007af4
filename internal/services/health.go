package services

import (
	"context"

	"github.com/ajharbinger/answer-eval-api/internal/errors"
	"github.com/ajharbinger/answer-eval-api/internal/logger"
)

// Fixed placeholder texts for the synthetic health-check evaluation
const (
	healthProbeAnswer    = "health check"
	healthProbeReference = "health check"
)

// healthProbe implements HealthService by pushing a synthetic evaluation
// through the same path real requests take
type healthProbe struct {
	evaluator EvaluationService
	logger    logger.Logger
}

// newHealthProbe creates a new health probe
func newHealthProbe(evaluator EvaluationService, log logger.Logger) *healthProbe {
	return &healthProbe{
		evaluator: evaluator,
		logger:    log,
	}
}

// Check issues a synthetic evaluation to confirm the scoring capability is
// reachable. Healthy means the call succeeded with a score in [0,1]; any
// failure reports unhealthy with the reason in Detail.
func (h *healthProbe) Check(ctx context.Context) HealthStatus {
	result, err := h.evaluator.Evaluate(ctx, EvaluationRequest{
		Answer:    healthProbeAnswer,
		Reference: healthProbeReference,
	})
	if err != nil {
		h.logger.Warn("Health probe failed", "reason", errors.UserMessage(err))
		return HealthStatus{
			Healthy: false,
			Detail:  errors.UserMessage(err),
		}
	}

	if result.Score < 0 || result.Score > 1 {
		return HealthStatus{
			Healthy: false,
			Detail:  "scoring capability returned an out-of-range score",
		}
	}

	return HealthStatus{
		Healthy: true,
		Detail:  "scoring capability is reachable",
	}
}
