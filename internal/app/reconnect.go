package app

import (
	"context"
	"time"

	"github.com/bullseye-labs/boardlink/internal/domain"
)

// Default reconnect policy values.
const (
	DefaultReconnectInterval = 5 * time.Second
)

// ReconnectPolicy describes how the listener re-establishes the stream after
// a dial failure or disconnect: a fixed delay between attempts, with an
// optional cap on consecutive failures.
type ReconnectPolicy struct {
	// Interval is the fixed delay before each reconnect attempt.
	Interval time.Duration

	// MaxAttempts caps consecutive failed attempts; 0 means unlimited.
	MaxAttempts int
}

// reconnector tracks consecutive reconnect attempts against a policy.
type reconnector struct {
	policy   ReconnectPolicy
	attempts int
}

func newReconnector(policy ReconnectPolicy) *reconnector {
	if policy.Interval <= 0 {
		policy.Interval = DefaultReconnectInterval
	}
	return &reconnector{policy: policy}
}

// Wait blocks for the policy interval before the next attempt. It returns
// ErrReconnectsExhausted once MaxAttempts consecutive waits have been used,
// or the context error if canceled while waiting.
func (r *reconnector) Wait(ctx context.Context) error {
	r.attempts++
	if r.policy.MaxAttempts > 0 && r.attempts > r.policy.MaxAttempts {
		return domain.ErrReconnectsExhausted
	}

	timer := time.NewTimer(r.policy.Interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Reset clears the consecutive-attempt counter after a successful connect.
func (r *reconnector) Reset() {
	r.attempts = 0
}
