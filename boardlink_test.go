package boardlink

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bullseye-labs/boardlink/internal/domain"
	lib "github.com/bullseye-labs/boardlink/pkg/boardlink"
)

// refusingDialer never connects.
type refusingDialer struct{}

func (refusingDialer) Dial(ctx context.Context, endpoint string) (lib.StreamConn, error) {
	return nil, errors.New("connection refused")
}

func TestRun_ReturnsErrorWhenReconnectsExhausted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReconnectInterval = time.Millisecond
	cfg.MaxReconnects = 1

	err := Run(context.Background(), cfg, lib.WithDialer(refusingDialer{}))
	if !errors.Is(err, domain.ErrReconnectsExhausted) {
		t.Fatalf("Run() error = %v, want ErrReconnectsExhausted", err)
	}
}

func TestRun_NilAfterContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	cfg := DefaultConfig()
	cfg.ReconnectInterval = 5 * time.Millisecond

	if err := Run(ctx, cfg, lib.WithDialer(refusingDialer{})); err != nil {
		t.Fatalf("Run() error = %v after cancel, want nil", err)
	}
}
