// Package retry provides a small retry-on-predicate combinator driven by
// an explicit policy, so backoff schedules stay testable without real
// time passing.
package retry

import (
	"context"
	"time"
)

// Policy describes a bounded retry schedule.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// Backoff maps the 1-based number of the attempt that just failed
	// to the delay before the next attempt.
	Backoff func(attempt int) time.Duration
}

// Linear returns a policy that waits attempt*step between attempts.
func Linear(maxAttempts int, step time.Duration) Policy {
	return Policy{
		MaxAttempts: maxAttempts,
		Backoff: func(attempt int) time.Duration {
			return time.Duration(attempt) * step
		},
	}
}

// SleepFunc suspends the caller for d, honoring ctx cancellation.
// Injected by tests to observe the schedule instead of waiting it out.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the wall-clock SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do runs fn up to p.MaxAttempts times. After a failed attempt it
// consults retryable: a non-retryable error propagates immediately, a
// retryable one triggers a backoff sleep and another attempt. The last
// attempt's error propagates without sleeping. The first success
// short-circuits the loop.
func Do[T any](ctx context.Context, p Policy, sleep SleepFunc, retryable func(error) bool, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		out, err := fn(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !retryable(err) || attempt == p.MaxAttempts {
			return zero, lastErr
		}

		if err := sleep(ctx, p.Backoff(attempt)); err != nil {
			return zero, err
		}
	}

	return zero, lastErr
}
