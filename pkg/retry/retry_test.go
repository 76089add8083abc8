package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:   attempts,
		InitialDelay:  time.Millisecond,
		MaxDelay:      2 * time.Millisecond,
		BackoffFactor: 2,
	}
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	var retried []int

	err := Do(context.Background(), fastConfig(5), "PostgreSQL", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}, func(attempt int, err error, nextDelay time.Duration) {
		retried = append(retried, attempt)
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDo_GivesUpAfterMaxAttempts(t *testing.T) {
	cause := errors.New("connection refused")
	calls := 0

	err := Do(context.Background(), fastConfig(3), "Redis", func(ctx context.Context) error {
		calls++
		return cause
	}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Redis: max retry attempts (3) exceeded")
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, fastConfig(3), "PostgreSQL", func(ctx context.Context) error {
		t.Fatal("fn must not run on a cancelled context")
		return nil
	}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNextDelay_CapsAtMaxDelay(t *testing.T) {
	cfg := Config{BackoffFactor: 10, MaxDelay: 50 * time.Millisecond}

	assert.Equal(t, 50*time.Millisecond, nextDelay(10*time.Millisecond, cfg))
	assert.Equal(t, 20*time.Millisecond, nextDelay(2*time.Millisecond, cfg))
}
