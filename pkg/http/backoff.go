package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// BackoffConfig controls retries with exponential backoff.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultBackoff returns a conservative retry policy suitable for flaky upstreams.
func DefaultBackoff() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

// StatusError carries an HTTP status code through retry and breaker layers.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.Code)
}

// doRequestWithBackoff sends the request, retrying transport failures and
// retryable status codes with exponential backoff. A nil backoff falls back
// to the client default; if neither is set the request is sent once.
func (hc *Client) doRequestWithBackoff(method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil {
		backoff = hc.defaultBackoff
	}
	if backoff == nil || backoff.MaxRetries <= 0 {
		return hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
	}

	interval := backoff.InitialInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	var lastSuccess, lastError any
	var lastStatus int
	var lastErr error

	for attempt := 0; attempt <= backoff.MaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(interval)
			interval *= 2
			if backoff.MaxInterval > 0 && interval > backoff.MaxInterval {
				interval = backoff.MaxInterval
			}
		}

		lastSuccess, lastError, lastStatus, lastErr = hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
		if lastErr == nil {
			return lastSuccess, lastError, lastStatus, nil
		}
		if errors.Is(lastErr, gobreaker.ErrOpenState) || errors.Is(lastErr, gobreaker.ErrTooManyRequests) {
			break
		}
		if !isRetryable(lastStatus, lastErr) {
			break
		}
	}

	return lastSuccess, lastError, lastStatus, lastErr
}

// isRetryable reports whether a failed attempt is worth repeating.
// Transport errors carry no status and are always retried.
func isRetryable(status int, err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		status = statusErr.Code
	}
	if status == 0 {
		return true
	}
	return status >= 500 || status == http.StatusTooManyRequests
}
