package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bullseye-labs/boardlink/internal/domain"
)

func TestReconnector_WaitRespectsInterval(t *testing.T) {
	r := newReconnector(ReconnectPolicy{Interval: 20 * time.Millisecond})

	start := time.Now()
	if err := r.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Wait() returned after %v, want >= 20ms", elapsed)
	}
}

func TestReconnector_MaxAttemptsExhausted(t *testing.T) {
	r := newReconnector(ReconnectPolicy{Interval: time.Millisecond, MaxAttempts: 2})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := r.Wait(ctx); err != nil {
			t.Fatalf("Wait() attempt %d error = %v", i+1, err)
		}
	}

	if err := r.Wait(ctx); !errors.Is(err, domain.ErrReconnectsExhausted) {
		t.Errorf("Wait() error = %v, want ErrReconnectsExhausted", err)
	}
}

func TestReconnector_ZeroMaxAttemptsIsUnlimited(t *testing.T) {
	r := newReconnector(ReconnectPolicy{Interval: time.Millisecond})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if err := r.Wait(ctx); err != nil {
			t.Fatalf("Wait() attempt %d error = %v", i+1, err)
		}
	}
}

func TestReconnector_ResetClearsAttempts(t *testing.T) {
	r := newReconnector(ReconnectPolicy{Interval: time.Millisecond, MaxAttempts: 1})
	ctx := context.Background()

	if err := r.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	r.Reset()
	if err := r.Wait(ctx); err != nil {
		t.Fatalf("Wait() after Reset() error = %v", err)
	}
}

func TestReconnector_CanceledContext(t *testing.T) {
	r := newReconnector(ReconnectPolicy{Interval: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}

func TestReconnector_DefaultInterval(t *testing.T) {
	r := newReconnector(ReconnectPolicy{})
	if r.policy.Interval != DefaultReconnectInterval {
		t.Errorf("default interval = %v, want %v", r.policy.Interval, DefaultReconnectInterval)
	}
}
