// Package retry implements the bounded exponential-backoff policy shared by
// the outbound collaborators (evaluation callback delivery, Pages activation
// polling).
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Policy describes a bounded retry schedule: up to MaxAttempts calls, with
// the delay between attempts growing by Multiplier from BaseDelay up to
// MaxDelay, plus an optional random jitter fraction.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	MaxDelay    time.Duration
	Jitter      float64
}

// Permanent marks an error as non-retryable; Do stops immediately and
// returns the wrapped error.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string { return p.Err.Error() }

func (p *Permanent) Unwrap() error { return p.Err }

// Do calls fn until it succeeds, returns a permanent error, the attempt
// budget is exhausted, or ctx is done while waiting to retry.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	delay := p.BaseDelay
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		var perm *Permanent
		if errors.As(err, &perm) {
			return perm.Err
		}
		if attempt >= p.MaxAttempts {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.jittered(delay)):
		}
		delay = p.grow(delay)
	}
}

func (p Policy) grow(delay time.Duration) time.Duration {
	next := time.Duration(float64(delay) * p.Multiplier)
	if p.MaxDelay > 0 && next > p.MaxDelay {
		next = p.MaxDelay
	}
	return next
}

func (p Policy) jittered(delay time.Duration) time.Duration {
	if p.Jitter <= 0 {
		return delay
	}
	return delay + time.Duration(rand.Float64()*p.Jitter*float64(delay))
}
