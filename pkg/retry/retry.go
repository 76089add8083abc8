package retry

import (
	"context"
	"fmt"
	"time"
)

// Config holds retry configuration
type Config struct {
	MaxAttempts     int
	InitialDelay    time.Duration
	MaxDelay        time.Duration
	BackoffFactor   float64
	MaxTotalTimeout time.Duration
}

// DefaultConfig returns a default retry configuration with 1 minute max timeout
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     10,
		InitialDelay:    100 * time.Millisecond,
		MaxDelay:        10 * time.Second,
		BackoffFactor:   2.0,
		MaxTotalTimeout: 60 * time.Second,
	}
}

// AttemptFunc is notified after each failed attempt that will be retried.
type AttemptFunc func(attempt int, err error, nextDelay time.Duration)

// Do executes fn with exponential backoff. name prefixes returned errors so
// callers can tell which dependency gave up.
func Do(ctx context.Context, cfg Config, name string, fn func(ctx context.Context) error, onRetry AttemptFunc) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return aborted(name, attempt-1, err, lastErr)
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		if onRetry != nil {
			onRetry(attempt, lastErr, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return aborted(name, attempt, ctx.Err(), lastErr)
		case <-timer.C:
		}

		delay = nextDelay(delay, cfg)
	}

	return fmt.Errorf("%s: max retry attempts (%d) exceeded: %w", name, cfg.MaxAttempts, lastErr)
}

func nextDelay(current time.Duration, cfg Config) time.Duration {
	next := time.Duration(float64(current) * cfg.BackoffFactor)
	if cfg.MaxDelay > 0 && next > cfg.MaxDelay {
		return cfg.MaxDelay
	}
	return next
}

func aborted(name string, attempts int, ctxErr, lastErr error) error {
	if lastErr != nil {
		return fmt.Errorf("%s: retry aborted after %d attempts: %w (last error: %v)", name, attempts, ctxErr, lastErr)
	}
	return fmt.Errorf("%s: retry aborted: %w", name, ctxErr)
}
