package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajharbinger/answer-eval-api/internal/errors"
	"github.com/ajharbinger/answer-eval-api/internal/services"
)

// EvaluationHandler handles single and batch evaluation requests
type EvaluationHandler struct {
	evaluation services.EvaluationService
	batch      services.BatchService
}

// NewEvaluationHandler creates a new evaluation handler with service injection
func NewEvaluationHandler(evaluation services.EvaluationService, batch services.BatchService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluation: evaluation,
		batch:      batch,
	}
}

// evaluateRequest is the body of a single evaluation request
type evaluateRequest struct {
	Answer    string `json:"answer"`
	Reference string `json:"reference"`
	DomainID  string `json:"domainId"`
}

// batchEvaluateRequest is the body of a batch evaluation request. A pair's
// own domainId, when present, overrides the batch-level one.
type batchEvaluateRequest struct {
	Pairs    []services.EvaluationRequest `json:"pairs"`
	DomainID string                       `json:"domainId"`
}

// EvaluateSingle grades one answer against a reference
func (h *EvaluationHandler) EvaluateSingle(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.evaluation.Evaluate(c.Request.Context(), services.EvaluationRequest{
		Answer:    req.Answer,
		Reference: req.Reference,
		DomainID:  req.DomainID,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": errors.UserMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"similarity": result.Score,
		"feedback":   result.Feedback,
	})
}

// EvaluateBatch grades a list of answer/reference pairs. Individual item
// failures come back as error entries in the results array, not as a failed
// request.
func (h *EvaluationHandler) EvaluateBatch(c *gin.Context) {
	var req batchEvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	batch, err := h.batch.EvaluateBatch(c.Request.Context(), req.Pairs, req.DomainID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": errors.UserMessage(err)})
		return
	}

	results := make([]gin.H, len(batch.Outcomes))
	for i, outcome := range batch.Outcomes {
		if outcome.Err != nil {
			results[i] = gin.H{
				"error":   true,
				"message": outcome.Err.Message,
			}
		} else {
			results[i] = gin.H{
				"similarity": outcome.Result.Score,
				"feedback":   outcome.Result.Feedback,
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"results":        results,
		"totalEvaluated": batch.EvaluatedCount,
	})
}

// statusFor maps application error codes to HTTP statuses
func statusFor(err error) int {
	switch errors.CodeOf(err) {
	case errors.ErrCodeValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
