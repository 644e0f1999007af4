package services

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajharbinger/answer-eval-api/internal/errors"
	"github.com/ajharbinger/answer-eval-api/internal/logger"
	"github.com/ajharbinger/answer-eval-api/internal/thresholds"
	"github.com/ajharbinger/answer-eval-api/pkg/config"
)

// mockScoringClient implements scoring.Client for testing
type mockScoringClient struct {
	score float64
	err   error
	delay time.Duration

	calls     int64
	active    int64
	maxActive int64
}

func (m *mockScoringClient) Score(ctx context.Context, answer, reference string) (float64, error) {
	atomic.AddInt64(&m.calls, 1)

	active := atomic.AddInt64(&m.active, 1)
	for {
		observed := atomic.LoadInt64(&m.maxActive)
		if active <= observed || atomic.CompareAndSwapInt64(&m.maxActive, observed, active) {
			break
		}
	}
	defer atomic.AddInt64(&m.active, -1)

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return 0, errors.ScoringUnavailable("scoring capability request failed", ctx.Err())
		}
	}

	if m.err != nil {
		return 0, m.err
	}
	return m.score, nil
}

func (m *mockScoringClient) callCount() int64 {
	return atomic.LoadInt64(&m.calls)
}

func testConfig() *config.Config {
	return &config.Config{
		ThresholdExcellent: 0.85,
		ThresholdGood:      0.70,
		ThresholdPartial:   0.50,
		BatchConcurrency:   8,
		BatchTimeout:       5 * time.Second,
		MaxBatchSize:       100,
	}
}

func testRegistry(t *testing.T, overrides map[string]config.DomainProfile) *thresholds.Registry {
	t.Helper()
	registry, err := thresholds.NewRegistryFromConfig(testConfig(), overrides)
	require.NoError(t, err)
	return registry
}

func TestEvaluator_Evaluate(t *testing.T) {
	client := &mockScoringClient{score: 0.92}
	evaluator := newEvaluator(testRegistry(t, nil), client, logger.NewNopLogger())

	result, err := evaluator.Evaluate(context.Background(), EvaluationRequest{
		Answer:    "Lambda is a serverless compute service",
		Reference: "AWS Lambda is a serverless computing service",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.92, result.Score)
	assert.Equal(t, thresholds.TierExcellent, result.Tier)
	assert.NotEmpty(t, result.Feedback)
}

func TestEvaluator_Evaluate_Validation(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		reference string
	}{
		{"empty answer", "", "reference text"},
		{"whitespace answer", "   \t\n", "reference text"},
		{"empty reference", "answer text", ""},
		{"whitespace reference", "answer text", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockScoringClient{score: 0.9}
			evaluator := newEvaluator(testRegistry(t, nil), client, logger.NewNopLogger())

			_, err := evaluator.Evaluate(context.Background(), EvaluationRequest{
				Answer:    tt.answer,
				Reference: tt.reference,
			})
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
			assert.Equal(t, int64(0), client.callCount(),
				"validation must run before any scoring call")
		})
	}
}

func TestEvaluator_Evaluate_Rounding(t *testing.T) {
	client := &mockScoringClient{score: 0.923456}
	evaluator := newEvaluator(testRegistry(t, nil), client, logger.NewNopLogger())

	result, err := evaluator.Evaluate(context.Background(), EvaluationRequest{
		Answer:    "a",
		Reference: "b",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.9235, result.Score)
}

func TestEvaluator_Evaluate_BoundaryBelongsToHigherTier(t *testing.T) {
	client := &mockScoringClient{score: 0.70}
	evaluator := newEvaluator(testRegistry(t, nil), client, logger.NewNopLogger())

	result, err := evaluator.Evaluate(context.Background(), EvaluationRequest{
		Answer:    "a",
		Reference: "b",
	})
	require.NoError(t, err)
	assert.Equal(t, thresholds.TierGood, result.Tier)
}

func TestEvaluator_Evaluate_DomainOverride(t *testing.T) {
	registry := testRegistry(t, map[string]config.DomainProfile{
		"aws-certification": {Excellent: 0.90, Good: 0.75, Partial: 0.55},
	})
	client := &mockScoringClient{score: 0.87}
	evaluator := newEvaluator(registry, client, logger.NewNopLogger())

	// Under the override, 0.87 is below the 0.90 excellent bound
	result, err := evaluator.Evaluate(context.Background(), EvaluationRequest{
		Answer:    "a",
		Reference: "b",
		DomainID:  "aws-certification",
	})
	require.NoError(t, err)
	assert.Equal(t, thresholds.TierGood, result.Tier)

	// The same score clears the default 0.85 bound
	result, err = evaluator.Evaluate(context.Background(), EvaluationRequest{
		Answer:    "a",
		Reference: "b",
	})
	require.NoError(t, err)
	assert.Equal(t, thresholds.TierExcellent, result.Tier)
}

func TestEvaluator_Evaluate_ScoringUnavailable(t *testing.T) {
	client := &mockScoringClient{err: errors.ScoringUnavailable("scoring capability request failed", nil)}
	evaluator := newEvaluator(testRegistry(t, nil), client, logger.NewNopLogger())

	_, err := evaluator.Evaluate(context.Background(), EvaluationRequest{
		Answer:    "a",
		Reference: "b",
	})
	require.Error(t, err)
	assert.True(t, errors.IsScoringUnavailable(err))
}

func TestEvaluator_Evaluate_WrapsUnknownClientErrors(t *testing.T) {
	client := &mockScoringClient{err: stderrors.New("connection reset")}
	evaluator := newEvaluator(testRegistry(t, nil), client, logger.NewNopLogger())

	_, err := evaluator.Evaluate(context.Background(), EvaluationRequest{
		Answer:    "a",
		Reference: "b",
	})
	require.Error(t, err)
	assert.True(t, errors.IsScoringUnavailable(err))
}

func TestEvaluator_Evaluate_Deterministic(t *testing.T) {
	client := &mockScoringClient{score: 0.6543}
	evaluator := newEvaluator(testRegistry(t, nil), client, logger.NewNopLogger())

	req := EvaluationRequest{Answer: "a", Reference: "b"}

	first, err := evaluator.Evaluate(context.Background(), req)
	require.NoError(t, err)
	second, err := evaluator.Evaluate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
