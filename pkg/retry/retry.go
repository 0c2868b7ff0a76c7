package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RateLimitError signals that the upstream API rejected a call for exceeding
// its request ceiling. RetryAfter carries the server-provided delay when the
// response included one; zero means the server gave no hint.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
	}
	return "rate limited"
}

// IsRateLimit reports whether err carries a rate-limit signal and returns
// the server-provided delay if so.
func IsRateLimit(err error) (time.Duration, bool) {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl.RetryAfter, true
	}
	return 0, false
}

type Policy struct {
	// MaxRetries is the number of additional attempts after the first.
	MaxRetries int
	// DefaultDelay is used when the rate-limit signal carries no delay.
	DefaultDelay time.Duration
}

// DefaultPolicy retries a rate-limited call exactly once, waiting one second
// unless the server asked for more.
func DefaultPolicy() Policy {
	return Policy{MaxRetries: 1, DefaultDelay: time.Second}
}

// Do runs fn, retrying only on rate-limit errors, up to policy.MaxRetries
// additional attempts. Before each retry it waits the server-provided delay,
// falling back to policy.DefaultDelay. Any other error, and a rate limit
// that outlives the retry budget, is returned as-is.
func Do(ctx context.Context, policy Policy, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		delay, ok := IsRateLimit(err)
		if !ok || attempt >= policy.MaxRetries {
			return err
		}
		if delay <= 0 {
			delay = policy.DefaultDelay
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
