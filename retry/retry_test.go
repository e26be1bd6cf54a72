package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")

func fastPolicy(attempts int) Policy {
	return Policy{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
		Multiplier:  2,
		MaxDelay:    4 * time.Millisecond,
	}
}

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := fastPolicy(5).Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 4 {
			return errTransient
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	err := fastPolicy(3).Do(context.Background(), func(context.Context) error {
		calls++
		return errTransient
	})
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnPermanentError(t *testing.T) {
	rejected := errors.New("rejected")
	calls := 0
	err := fastPolicy(5).Do(context.Background(), func(context.Context) error {
		calls++
		return &Permanent{Err: rejected}
	})
	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, 1, calls, "a permanent error must not be retried")
}

func TestDoRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := Policy{MaxAttempts: 10, BaseDelay: time.Minute, Multiplier: 2}
	done := make(chan error, 1)
	go func() {
		done <- policy.Do(ctx, func(context.Context) error { return errTransient })
	}()
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Do did not return after context cancellation")
	}
}

func TestGrowIsCapped(t *testing.T) {
	p := Policy{BaseDelay: time.Second, Multiplier: 2, MaxDelay: 3 * time.Second}
	d := p.grow(p.BaseDelay)
	assert.Equal(t, 2*time.Second, d)
	d = p.grow(d)
	assert.Equal(t, 3*time.Second, d)
	d = p.grow(d)
	assert.Equal(t, 3*time.Second, d)
}
