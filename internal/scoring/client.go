package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ajharbinger/answer-eval-api/internal/errors"
	"github.com/ajharbinger/answer-eval-api/pkg/config"
)

// Client abstracts the external similarity-scoring capability: two texts in,
// a score in [0,1] or a failure out. Implementations must be safe for
// concurrent use.
type Client interface {
	Score(ctx context.Context, answer, reference string) (float64, error)
}

// scoreRequest is the payload sent to the scoring capability
type scoreRequest struct {
	Answer    string `json:"answer"`
	Reference string `json:"reference"`
}

// scoreResponse is the payload returned by the scoring capability
type scoreResponse struct {
	Status     string  `json:"status"`
	Similarity float64 `json:"similarity"`
	Error      string  `json:"error,omitempty"`
}

// HTTPClient calls the scoring capability over HTTP with a bounded timeout.
// It performs no retries; transient-failure handling belongs to callers.
type HTTPClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewHTTPClient creates a new scoring client from configuration
func NewHTTPClient(cfg *config.Config) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: cfg.ScoringTimeout,
		},
		endpoint: cfg.ScoringAPIURL,
	}
}

// Score sends an answer/reference pair to the scoring capability and returns
// the similarity score. Timeouts, transport failures, non-200 responses,
// malformed bodies, error statuses, and out-of-range scores all surface as
// SCORING_UNAVAILABLE.
func (c *HTTPClient) Score(ctx context.Context, answer, reference string) (float64, error) {
	requestBody, err := json.Marshal(scoreRequest{
		Answer:    answer,
		Reference: reference,
	})
	if err != nil {
		return 0, errors.ScoringUnavailable("failed to marshal scoring request", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return 0, errors.ScoringUnavailable("failed to create scoring request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.ScoringUnavailable("scoring capability request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, errors.ScoringUnavailable("failed to read scoring response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return 0, errors.ScoringUnavailable(
			fmt.Sprintf("scoring capability returned status code %d", resp.StatusCode), nil)
	}

	var scoreResp scoreResponse
	if err := json.Unmarshal(respBody, &scoreResp); err != nil {
		return 0, errors.ScoringUnavailable("failed to parse scoring response", err)
	}

	if !strings.EqualFold(scoreResp.Status, "ok") {
		return 0, errors.ScoringUnavailable(
			fmt.Sprintf("scoring capability reported an error: %s", scoreResp.Error), nil)
	}

	// A producer emitting scores outside [0,1] is malfunctioning; reject
	// rather than clamp so the failure is visible.
	if scoreResp.Similarity < 0 || scoreResp.Similarity > 1 {
		return 0, errors.ScoringUnavailable(
			fmt.Sprintf("scoring capability returned out-of-range score %.4f", scoreResp.Similarity), nil)
	}

	return scoreResp.Similarity, nil
}

// Close cleans up client resources
func (c *HTTPClient) Close() {
	c.httpClient.CloseIdleConnections()
}
