// Package retry provides bounded retries with exponential backoff for
// calls against hosted model APIs.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net/http"
	"time"
)

var (
	DefaultMaxRetries = 1
	DefaultBaseWait   = 1 * time.Second
)

// Option configures a Do call.
type Option func(*config)

type config struct {
	maxRetries int
	baseWait   time.Duration
}

// WithMaxRetries sets the maximum number of attempts.
func WithMaxRetries(maxRetries int) Option {
	return func(c *config) {
		c.maxRetries = maxRetries
	}
}

// WithBaseWait sets the wait before the second attempt. Subsequent waits
// grow exponentially with a small random jitter.
func WithBaseWait(baseWait time.Duration) Option {
	return func(c *config) {
		c.baseWait = baseWait
	}
}

// RecoverableError wraps an error that is worth retrying.
type RecoverableError struct {
	err error
}

func (e *RecoverableError) Error() string {
	return e.err.Error()
}

func (e *RecoverableError) Unwrap() error {
	return e.err
}

// NewRecoverableError marks an error as retryable.
func NewRecoverableError(err error) *RecoverableError {
	return &RecoverableError{err: err}
}

// IsRecoverable returns true if the error is marked retryable.
func IsRecoverable(err error) bool {
	var recoverable *RecoverableError
	return errors.As(err, &recoverable)
}

// APIError is implemented by errors that carry an HTTP status code.
type APIError interface {
	error
	StatusCode() int
}

// ShouldRetry reports whether the given HTTP status code should trigger
// another attempt.
func ShouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}

// Do executes f up to the configured number of attempts. An error stops
// the retries unless it is marked recoverable or carries a retryable
// HTTP status code.
func Do(ctx context.Context, f func() error, opts ...Option) error {
	c := &config{
		maxRetries: DefaultMaxRetries,
		baseWait:   DefaultBaseWait,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxRetries < 1 {
		c.maxRetries = 1
	}

	var lastError error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(float64(c.baseWait) * math.Pow(2, float64(attempt-1)))
			jitter := time.Duration(rand.Float64() * float64(backoff) * 0.1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}
		err := f()
		if err == nil {
			return nil
		}
		lastError = err
		if IsRecoverable(err) {
			continue
		}
		var apiErr APIError
		if errors.As(err, &apiErr) && ShouldRetry(apiErr.StatusCode()) {
			continue
		}
		return err
	}
	return lastError
}
