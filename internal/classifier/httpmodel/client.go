// Package httpmodel talks to an external model server that hosts the
// emotion classifier weights and exposes a JSON prediction endpoint.
package httpmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/moodflix/moodflix/internal/vision"
)

// ErrModelServerUnavailable marks transport-level failures after retries
// were exhausted.
var ErrModelServerUnavailable = errors.New("model server unavailable")

// ErrInvalidResponse marks a response the client could not interpret.
var ErrInvalidResponse = errors.New("invalid model server response")

// Config holds the model server client configuration.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:8501",
		Timeout:    30 * time.Second,
		RetryCount: 3,
	}
}

// Client is the HTTP client for the model server.
type Client struct {
	httpClient *http.Client
	config     Config
}

// NewClient creates a model server client.
func NewClient(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
	}
}

type predictRequest struct {
	Instances [][]float32 `json:"instances"`
	Shape     []int       `json:"shape"`
}

type predictResponse struct {
	Predictions [][]float32 `json:"predictions"`
}

// Predict posts the tensor to /v1/models/emotion:predict and returns the
// first (only) prediction row.
func (c *Client) Predict(ctx context.Context, tensor vision.Tensor) ([]float32, error) {
	req := predictRequest{
		Instances: [][]float32{tensor.Data},
		Shape:     tensor.Shape(),
	}

	var resp predictResponse
	if err := c.doRequestWithRetry(ctx, http.MethodPost, "/v1/models/emotion:predict", req, &resp); err != nil {
		return nil, err
	}

	if len(resp.Predictions) == 0 {
		return nil, fmt.Errorf("%w: empty predictions", ErrInvalidResponse)
	}
	return resp.Predictions[0], nil
}

// Ready probes the model server health endpoint.
func (c *Client) Ready(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, "/v1/models/emotion", nil, nil)
}

// maxBackoff caps the retry backoff duration.
const maxBackoff = 30 * time.Second

// calculateBackoff returns 1s, 2s, 4s, ... for successive attempts.
func calculateBackoff(attempt int) time.Duration {
	if attempt <= 0 {
		return time.Second
	}
	seconds := 1
	for i := 1; i < attempt && i < 6; i++ {
		seconds *= 2
	}
	return time.Duration(seconds) * time.Second
}

// doRequestWithRetry retries server-side failures with exponential
// backoff. Client errors (4xx) and context cancellation are not retried.
func (c *Client) doRequestWithRetry(ctx context.Context, method, path string, body any, result any) error {
	var lastErr error

	for attempt := 0; attempt <= c.config.RetryCount; attempt++ {
		if attempt > 0 {
			backoff := calculateBackoff(attempt)
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		lastErr = c.doRequest(ctx, method, path, body, result)
		if lastErr == nil {
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		var statusErr *statusError
		if errors.As(lastErr, &statusErr) && statusErr.code < 500 {
			return lastErr
		}
	}

	return fmt.Errorf("%w: %v", ErrModelServerUnavailable, lastErr)
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("model server returned status %d: %s", e.code, e.body)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	url := c.config.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &statusError{code: resp.StatusCode, body: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
	}

	return nil
}
