// Package retry runs an operation a bounded number of times with a
// context-aware backoff between attempts.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy configures Do. The zero value runs the operation once.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// Delay returns the wait before the given retry (1-based).
	Delay func(retry int) time.Duration
	// Retryable decides whether an error is worth another attempt. Nil
	// retries every error.
	Retryable func(error) bool
	// OnRetry is called before each wait.
	OnRetry func(retry int, err error, wait time.Duration)
	// Sleep replaces the default timer based wait.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Linear waits base*retry before each retry.
func Linear(base time.Duration) func(int) time.Duration {
	return func(retry int) time.Duration { return base * time.Duration(retry) }
}

// Constant waits d before each retry.
func Constant(d time.Duration) func(int) time.Duration {
	return func(int) time.Duration { return d }
}

// Do calls fn until it succeeds, returns a non-retryable error or the
// attempts run out. The last error is returned. Once ctx is done no
// further attempt is made.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context, attempt int) error) error {
	attempts := max(p.MaxAttempts, 1)
	sleep := p.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			var wait time.Duration
			if p.Delay != nil {
				wait = p.Delay(attempt - 1)
			}
			if p.OnRetry != nil {
				p.OnRetry(attempt-1, lastErr, wait)
			}
			if err := sleep(ctx, wait); err != nil {
				return fmt.Errorf("%w (retry aborted: %w)", lastErr, err)
			}
		}

		lastErr = fn(ctx, attempt)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return lastErr
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

// Sleep waits for d or until ctx is done. Non-positive durations return
// immediately unless ctx is already done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
