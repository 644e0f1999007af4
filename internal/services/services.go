package services

import (
	"context"

	"github.com/ajharbinger/answer-eval-api/internal/errors"
	"github.com/ajharbinger/answer-eval-api/internal/logger"
	"github.com/ajharbinger/answer-eval-api/internal/scoring"
	"github.com/ajharbinger/answer-eval-api/internal/thresholds"
	"github.com/ajharbinger/answer-eval-api/pkg/config"
)

// EvaluationRequest is one answer/reference pair to grade
type EvaluationRequest struct {
	Answer    string `json:"answer"`
	Reference string `json:"reference"`
	DomainID  string `json:"domainId,omitempty"`
}

// EvaluationResult is the outcome of grading one request. Score is rounded
// to 4 decimal places; Tier and Feedback are a pure function of the score
// and the resolved threshold profile.
type EvaluationResult struct {
	Score    float64 `json:"similarity"`
	Tier     string  `json:"tier"`
	Feedback string  `json:"feedback"`
}

// BatchItemOutcome is one result slot in a batch: exactly one of Result or
// Err is set
type BatchItemOutcome struct {
	Result *EvaluationResult
	Err    *errors.AppError
}

// BatchResult is the response to a batch request. Outcomes is ordered to
// match the input pairs; EvaluatedCount counts successes and errors both.
type BatchResult struct {
	Outcomes       []BatchItemOutcome
	EvaluatedCount int
}

// HealthStatus reports whether the scoring capability is reachable
type HealthStatus struct {
	Healthy bool
	Detail  string
}

// EvaluationService defines the interface for single-answer evaluation
type EvaluationService interface {
	Evaluate(ctx context.Context, req EvaluationRequest) (*EvaluationResult, error)
}

// BatchService defines the interface for batch evaluation
type BatchService interface {
	EvaluateBatch(ctx context.Context, pairs []EvaluationRequest, domainID string) (*BatchResult, error)
}

// HealthService defines the interface for the scoring health probe
type HealthService interface {
	Check(ctx context.Context) HealthStatus
}

// Services contains all application services
type Services struct {
	Evaluation EvaluationService
	Batch      BatchService
	Health     HealthService
}

// NewServices creates a new Services instance with all dependencies.
// The registry and scoring client are shared handles, injected once here
// and never mutated afterwards.
func NewServices(cfg *config.Config, registry *thresholds.Registry, client scoring.Client, log logger.Logger) *Services {
	evaluator := newEvaluator(registry, client, log)
	return &Services{
		Evaluation: evaluator,
		Batch:      newBatchCoordinator(evaluator, cfg, log),
		Health:     newHealthProbe(evaluator, log),
	}
}
