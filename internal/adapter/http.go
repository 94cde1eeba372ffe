package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/sorel-labs/sorel/internal/logger"
)

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// PostJSON posts a JSON body and returns the response body of a 200 answer.
	// Rate limited (429) and 5xx answers are retried with backoff.
	PostJSON(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error)
}

// HTTPRetryConfig bounds the retries of rate limited requests
type HTTPRetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultHTTPRetryConfig returns the retry settings used by the API server
func DefaultHTTPRetryConfig() HTTPRetryConfig {
	return HTTPRetryConfig{
		InitialInterval: 2 * time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  1 * time.Minute,
	}
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
	retry  HTTPRetryConfig
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration, retry HTTPRetryConfig) HTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		retry: retry,
	}
}

// PostJSON posts body with exponential backoff retry on rate limiting and server errors
func (c *RealHTTPClient) PostJSON(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		// The request is rebuilt on every attempt so the body reader starts over
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", url))
			}
		}()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			logger.WarnCtx(ctx, "request failed, retrying with backoff",
				zap.String("url", url),
				zap.Int("status", resp.StatusCode))
			return fmt.Errorf("unexpected status code %d", resp.StatusCode)
		}

		if resp.StatusCode != http.StatusOK {
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return backoff.Permanent(fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(msg)))
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retry.InitialInterval
	b.MaxInterval = c.retry.MaxInterval
	b.MaxElapsedTime = c.retry.MaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return respBody, nil
}
