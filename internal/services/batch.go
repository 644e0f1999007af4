package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ajharbinger/answer-eval-api/internal/errors"
	"github.com/ajharbinger/answer-eval-api/internal/logger"
	"github.com/ajharbinger/answer-eval-api/pkg/config"
)

// batchCoordinator implements BatchService with bounded-concurrency fan-out.
// Per-pair evaluations are independent, so they run in parallel up to the
// configured limit; outcomes are written into index-tagged slots so output
// order always matches input order.
type batchCoordinator struct {
	evaluator   EvaluationService
	concurrency int
	timeout     time.Duration
	maxSize     int
	logger      logger.Logger
}

// newBatchCoordinator creates a new batch coordinator
func newBatchCoordinator(evaluator EvaluationService, cfg *config.Config, log logger.Logger) *batchCoordinator {
	concurrency := cfg.BatchConcurrency
	if concurrency <= 0 {
		concurrency = 8
	}
	return &batchCoordinator{
		evaluator:   evaluator,
		concurrency: concurrency,
		timeout:     cfg.BatchTimeout,
		maxSize:     cfg.MaxBatchSize,
		logger:      log,
	}
}

// EvaluateBatch grades a list of pairs. An empty or oversized batch fails up
// front with a validation error; past that gate the call always returns a
// BatchResult — individual failures become error markers, never a failed
// call. The whole batch runs under one deadline; pairs cut off by it are
// marked "timeout" and completed outcomes are preserved.
func (b *batchCoordinator) EvaluateBatch(ctx context.Context, pairs []EvaluationRequest, domainID string) (*BatchResult, error) {
	if len(pairs) == 0 {
		return nil, errors.ValidationError("pairs must not be empty", nil).WithOperation("EvaluateBatch")
	}
	if b.maxSize > 0 && len(pairs) > b.maxSize {
		return nil, errors.ValidationError(
			fmt.Sprintf("batch size %d exceeds maximum of %d", len(pairs), b.maxSize), nil).
			WithOperation("EvaluateBatch")
	}

	batchCtx := ctx
	var cancel context.CancelFunc
	if b.timeout > 0 {
		batchCtx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	outcomes := make([]BatchItemOutcome, len(pairs))

	g := new(errgroup.Group)
	g.SetLimit(b.concurrency)

	for i, pair := range pairs {
		i, pair := i, pair
		if pair.DomainID == "" {
			pair.DomainID = domainID
		}
		g.Go(func() error {
			outcomes[i] = b.evaluateOne(batchCtx, pair)
			return nil
		})
	}

	// Workers never return errors; failures live in their outcome slots.
	_ = g.Wait()

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
		}
	}
	b.logger.Info("Batch evaluation completed", "pairs", len(pairs), "failed", failed)

	return &BatchResult{
		Outcomes:       outcomes,
		EvaluatedCount: len(outcomes),
	}, nil
}

// evaluateOne grades a single pair, converting every failure into an error
// marker so one bad pair never aborts the rest of the batch
func (b *batchCoordinator) evaluateOne(ctx context.Context, pair EvaluationRequest) BatchItemOutcome {
	if ctx.Err() != nil {
		return BatchItemOutcome{Err: timeoutMarker()}
	}

	result, err := b.evaluator.Evaluate(ctx, pair)
	if err != nil {
		// A scoring call cut off by the batch deadline reads as a scoring
		// failure; report it as the timeout it really is.
		if ctx.Err() == context.DeadlineExceeded && !errors.IsValidation(err) {
			return BatchItemOutcome{Err: timeoutMarker()}
		}
		return BatchItemOutcome{Err: errors.AsAppError(err)}
	}

	return BatchItemOutcome{Result: result}
}

func timeoutMarker() *errors.AppError {
	return errors.ScoringUnavailable("timeout", nil)
}
