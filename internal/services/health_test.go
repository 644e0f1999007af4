package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajharbinger/answer-eval-api/internal/errors"
	"github.com/ajharbinger/answer-eval-api/internal/logger"
)

func TestHealthProbe_Healthy(t *testing.T) {
	evaluator := newEvaluator(testRegistry(t, nil), &mockScoringClient{score: 0.5}, logger.NewNopLogger())
	probe := newHealthProbe(evaluator, logger.NewNopLogger())

	status := probe.Check(context.Background())
	assert.True(t, status.Healthy)
	assert.NotEmpty(t, status.Detail)
}

func TestHealthProbe_UnhealthyOnScoringFailure(t *testing.T) {
	client := &mockScoringClient{err: errors.ScoringUnavailable("scoring capability request failed", nil)}
	evaluator := newEvaluator(testRegistry(t, nil), client, logger.NewNopLogger())
	probe := newHealthProbe(evaluator, logger.NewNopLogger())

	status := probe.Check(context.Background())
	require.False(t, status.Healthy)
	assert.Contains(t, status.Detail, "scoring capability request failed")
}

func TestHealthProbe_UnhealthyRegardlessOfPotentialScore(t *testing.T) {
	// Even a client that would have returned a perfect score reads as
	// unhealthy when the call itself fails
	client := &mockScoringClient{score: 1.0, err: errors.ScoringUnavailable("timeout", nil)}
	evaluator := newEvaluator(testRegistry(t, nil), client, logger.NewNopLogger())
	probe := newHealthProbe(evaluator, logger.NewNopLogger())

	status := probe.Check(context.Background())
	assert.False(t, status.Healthy)
}
