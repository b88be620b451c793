// Package endpoint provides the HTTP client for remote scoring endpoints.
//
// This package implements the transport layer the batch executor drives. It
// handles payload submission, response parsing, error handling, and
// structured logging for reliable scoring operations.
//
// WIRE CONTRACT:
// A scoring endpoint accepts a text/csv payload (comma-separated numeric
// rows, one per line) over a synchronous POST and returns a JSON response
// containing one score per submitted row, in the same order as submitted:
//
//	{"predictions": [{"score": 4.31}, {"score": 7.08}]}
//
// Malformed responses (wrong field, non-numeric score, non-2xx status) and
// transport errors surface as plain errors here and are wrapped into
// batch.RequestFailure by the executor, which also verifies the row count.
package endpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/evalops/scorebench/internal/logging"
	"github.com/evalops/scorebench/internal/version"
	"github.com/go-resty/resty/v2"
)

// DefaultTimeoutSeconds is the default per-request timeout for scoring calls.
const DefaultTimeoutSeconds = 60

// scoreResponse mirrors the endpoint's JSON response body.
type scoreResponse struct {
	Predictions []prediction `json:"predictions"`
}

// prediction holds one per-row score. Score is a pointer so a response with
// a missing or misnamed field is distinguishable from a legitimate zero.
type prediction struct {
	Score *float64 `json:"score"`
}

// Config holds the connection settings for one scoring endpoint.
//
// RetryCount defaults to zero: the evaluation contract has no automatic
// retry, and a failed batch aborts the whole run. Retry-with-backoff can be
// enabled per endpoint without changing the executor's contract since
// retries stay inside a single Score call.
type Config struct {
	URL            string // Full URL of the scoring route, e.g. http://127.0.0.1:9100/score
	TimeoutSeconds int    // Per-request timeout in seconds
	RetryCount     int    // Transport-level retries on connection errors (0 = none)
}

// Client wraps the Resty HTTP client with scoring-specific functionality for
// reliable endpoint communication. Provides a configured client with timeout
// handling, structured logging, and response parsing.
//
// Implements batch.Scorer so the executor can drive it directly.
type Client struct {
	client *resty.Client
	url    string
}

// restyLogger implements resty.Logger and routes Resty's internal logs
// through structured logging.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// NewClient creates a scoring endpoint client with Resty configured for
// synchronous batch submission. Sets up timeout handling, content headers
// for the CSV-in/JSON-out contract, and request/response logging through the
// structured logging system.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = DefaultTimeoutSeconds
	}

	client := resty.New()

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(restyLogger{})

	client.
		SetTimeout(time.Duration(timeout) * time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "text/csv").
		SetHeader("User-Agent", fmt.Sprintf("scorebench/%s", version.ScorebenchVersion))

	if cfg.RetryCount > 0 {
		client.
			SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(1 * time.Second).
			SetRetryMaxWaitTime(5 * time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				// Only retry on connection errors, not HTTP errors
				return err != nil
			})
	}

	// Custom request logging using structured logging
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Submitting scoring request: %s %s", req.Method, req.URL)
		return nil
	})

	// Custom response logging using structured logging
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("Scoring response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	return &Client{
		client: client,
		url:    cfg.URL,
	}
}

// URL returns the endpoint URL the client submits to.
func (c *Client) URL() string {
	return c.url
}

// Score submits one serialized batch payload to the endpoint and returns the
// per-row scores in submission order. Satisfies batch.Scorer.
//
// Returns an error on transport failure, non-2xx status, or a response whose
// prediction entries are missing the score field. Row count verification
// against the batch size is the executor's responsibility since only it
// knows how many rows the payload carried.
func (c *Client) Score(ctx context.Context, payload []byte) ([]float64, error) {
	var response scoreResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&response).
		Post(c.url)

	if err != nil {
		return nil, fmt.Errorf("failed to reach scoring endpoint at %s: %w", c.url, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, fmt.Errorf("scoring request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	scores := make([]float64, len(response.Predictions))
	for i, p := range response.Predictions {
		if p.Score == nil {
			return nil, fmt.Errorf("malformed response: prediction %d has no score field", i)
		}
		scores[i] = *p.Score
	}

	return scores, nil
}
