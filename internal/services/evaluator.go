package services

import (
	"context"
	"math"
	"strings"

	"github.com/ajharbinger/answer-eval-api/internal/errors"
	"github.com/ajharbinger/answer-eval-api/internal/logger"
	"github.com/ajharbinger/answer-eval-api/internal/scoring"
	"github.com/ajharbinger/answer-eval-api/internal/thresholds"
)

// evaluatorImpl implements EvaluationService
type evaluatorImpl struct {
	registry *thresholds.Registry
	client   scoring.Client
	logger   logger.Logger
}

// newEvaluator creates a new evaluator with injected dependencies
func newEvaluator(registry *thresholds.Registry, client scoring.Client, log logger.Logger) *evaluatorImpl {
	return &evaluatorImpl{
		registry: registry,
		client:   client,
		logger:   log,
	}
}

// Evaluate grades one answer/reference pair. Validation runs before any
// downstream call; the score is rounded to 4 decimal places and mapped to a
// tier via the profile resolved for the request's domain.
func (e *evaluatorImpl) Evaluate(ctx context.Context, req EvaluationRequest) (*EvaluationResult, error) {
	answer := strings.TrimSpace(req.Answer)
	reference := strings.TrimSpace(req.Reference)

	if answer == "" {
		return nil, errors.ValidationError("answer must not be empty", nil).WithOperation("Evaluate")
	}
	if reference == "" {
		return nil, errors.ValidationError("reference must not be empty", nil).WithOperation("Evaluate")
	}

	profile := e.registry.Resolve(req.DomainID)

	score, err := e.client.Score(ctx, answer, reference)
	if err != nil {
		e.logger.Error("Scoring capability call failed", err, "domain", profile.Name)
		if errors.IsScoringUnavailable(err) {
			return nil, err
		}
		return nil, errors.ScoringUnavailable("scoring capability call failed", err).WithOperation("Evaluate")
	}

	rounded := math.Round(score*10000) / 10000
	tier, feedback := profile.Classify(rounded)

	return &EvaluationResult{
		Score:    rounded,
		Tier:     tier,
		Feedback: feedback,
	}, nil
}
