package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type statusError struct {
	status int
}

func (e *statusError) Error() string   { return "api error" }
func (e *statusError) StatusCode() int { return e.status }

func TestRecoverableError(t *testing.T) {
	err := NewRecoverableError(errors.New("test error"))
	assert.True(t, IsRecoverable(err))
	assert.False(t, IsRecoverable(errors.New("test error")))
	assert.False(t, IsRecoverable(nil))
}

func TestRetry(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return NewRecoverableError(errors.New("test error"))
	}, WithMaxRetries(3), WithBaseWait(time.Millisecond*20))
	assert.Error(t, err)
	assert.Equal(t, "test error", err.Error())
	assert.Equal(t, 3, count)
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return errors.New("bad request")
	}, WithMaxRetries(3), WithBaseWait(time.Millisecond))
	assert.Error(t, err)
	assert.Equal(t, 1, count)
}

func TestRetryOnRetryableStatus(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		if count < 2 {
			return &statusError{status: 429}
		}
		return nil
	}, WithMaxRetries(3), WithBaseWait(time.Millisecond))
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSingleAttemptDefault(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return NewRecoverableError(errors.New("quota"))
	})
	assert.Error(t, err)
	assert.Equal(t, 1, count)
}

func TestShouldRetry(t *testing.T) {
	assert.True(t, ShouldRetry(429))
	assert.True(t, ShouldRetry(503))
	assert.True(t, ShouldRetry(504))
	assert.False(t, ShouldRetry(400))
	assert.False(t, ShouldRetry(401))
}
