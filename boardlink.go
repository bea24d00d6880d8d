// Package boardlink provides a lightweight client for an electronic
// dartboard controller's event stream and control API.
//
// Example usage:
//
//	cfg := boardlink.DefaultConfig()
//	cfg.Host = "192.168.1.50"
//	if err := boardlink.Run(context.Background(), cfg); err != nil {
//	    log.Fatal(err)
//	}
package boardlink

import (
	"context"
	"errors"

	"github.com/bullseye-labs/boardlink/internal/domain"
	lib "github.com/bullseye-labs/boardlink/pkg/boardlink"
)

// Config holds the configuration for the board client.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = lib.Config

// Board is the embeddable client. See pkg/boardlink for the full API.
type Board = lib.Board

// Option configures optional behavior of a Board.
type Option = lib.Option

// EventHandler receives client notifications; see pkg/boardlink.
type EventHandler = lib.EventHandler

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return lib.DefaultConfig()
}

// New creates a new Board instance. See pkg/boardlink.New.
func New(cfg Config, opts ...Option) (*Board, error) {
	return lib.New(cfg, opts...)
}

// Run creates a Board and blocks until the context is canceled or the
// stream finishes (Once mode or reconnect exhaustion). The terminal error
// that crashed the client, if any, is returned.
func Run(ctx context.Context, cfg Config, opts ...Option) error {
	b, err := lib.New(cfg, opts...)
	if err != nil {
		return err
	}

	if err := b.Start(ctx); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
	case <-b.Done():
	}

	// The listener may already have stopped on its own (Once mode) or
	// crashed (reconnect exhaustion).
	if err := b.Stop(); err != nil && !errors.Is(err, domain.ErrNotRunning) {
		return err
	}
	return b.Err()
}
