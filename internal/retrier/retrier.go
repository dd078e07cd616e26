package retrier

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// Do calls fn until it returns nil, up to attempts times, sleeping interval
// between consecutive calls. Retries are sequential with a fixed interval
// (Factor 1.0 — no exponential growth, no jitter).
//
// On exhaustion the error from the last attempt is returned, so the caller
// sees the underlying failure rather than a generic timeout. Context
// cancellation stops the loop early; if no attempt has failed yet, the
// context error is returned.
func Do(ctx context.Context, attempts int, interval time.Duration, fn func(context.Context) error) error {
	if attempts < 1 {
		return fmt.Errorf("retrier: attempts must be at least 1, got %d", attempts)
	}

	var lastErr error
	backoff := wait.Backoff{
		Duration: interval,
		Factor:   1.0,
		Steps:    attempts,
	}
	err := wait.ExponentialBackoffWithContext(ctx, backoff, func(ctx context.Context) (bool, error) {
		if err := fn(ctx); err != nil {
			lastErr = err
			return false, nil
		}
		return true, nil
	})
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		// Canceled mid-loop; report the interruption, keeping the last
		// attempt's failure for context when there was one.
		if lastErr != nil {
			return fmt.Errorf("interrupted after failed attempt (%v): %w", lastErr, ctx.Err())
		}
		return ctx.Err()
	}
	if lastErr != nil {
		return fmt.Errorf("retries exhausted after %d attempts: %w", attempts, lastErr)
	}
	return err
}
