package app

import (
	"context"
	"time"

	"github.com/bullseye-labs/boardlink/internal/domain"
	"github.com/bullseye-labs/boardlink/internal/ports"
	"github.com/bullseye-labs/boardlink/internal/protocol"
)

// ListenerConfig contains configuration for the stream listener loop.
type ListenerConfig struct {
	// Endpoint is the full stream URL including the type=state filter.
	Endpoint string

	// Reconnect governs redialing after dial failures and disconnects.
	Reconnect ReconnectPolicy

	// Once exits after the first disconnect instead of redialing.
	Once bool
}

// StreamEmitter receives notifications from the listener loop.
// Calls are made synchronously from the consuming goroutine.
type StreamEmitter interface {
	OnThrow(summary Summary)
	OnBoardEvent(summary Summary)
	OnStreamError(err error, retryable bool)
	OnDecodeError(err error)
}

// Listener owns the decode and dispatch cycle for the board's event stream.
// It dials, consumes frames sequentially, and redials per the reconnect
// policy. Decode errors are local to one frame and never terminate the loop.
type Listener struct {
	config    ListenerConfig
	dialer    ports.StreamDialer
	stateRepo ports.StateRepository
	logger    ports.Logger
	emitter   StreamEmitter
}

// NewListener creates a listener with the given dependencies.
func NewListener(
	config ListenerConfig,
	dialer ports.StreamDialer,
	stateRepo ports.StateRepository,
	logger ports.Logger,
	emitter StreamEmitter,
) *Listener {
	return &Listener{
		config:    config,
		dialer:    dialer,
		stateRepo: stateRepo,
		logger:    logger,
		emitter:   emitter,
	}
}

// Run executes the listen loop until the context is canceled, the reconnect
// policy is exhausted, or (in Once mode) the first session ends.
func (l *Listener) Run(ctx context.Context) error {
	state, err := l.stateRepo.Load(ctx)
	if err != nil {
		l.logger.Error("failed to load session state", ports.Err(err))
		// Continue with an empty state.
		state = domain.SessionState{}
	}

	rc := newReconnector(l.config.Reconnect)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		conn, err := l.dialer.Dial(ctx, l.config.Endpoint)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.logger.Error("dial failed",
				ports.String("endpoint", l.config.Endpoint),
				ports.Err(err),
			)
			if l.emitter != nil {
				l.emitter.OnStreamError(err, true)
			}
			if err := rc.Wait(ctx); err != nil {
				return err
			}
			continue
		}
		rc.Reset()

		state.SessionID = conn.SessionID()
		state.ConnectedAt = time.Now().UTC()
		state.DisconnectedAt = time.Time{}
		l.saveState(ctx, &state)

		l.logger.Info("stream connected",
			ports.String("session", conn.SessionID()),
			ports.String("endpoint", l.config.Endpoint),
		)

		readErr := l.consume(ctx, conn, &state)
		_ = conn.Close()

		state.DisconnectedAt = time.Now().UTC()
		l.saveState(ctx, &state)

		if ctx.Err() != nil {
			return ctx.Err()
		}

		l.logger.Warn("stream closed",
			ports.String("session", conn.SessionID()),
			ports.Err(readErr),
		)
		if l.emitter != nil && readErr != nil {
			l.emitter.OnStreamError(readErr, !l.config.Once)
		}

		if l.config.Once {
			return nil
		}

		if err := rc.Wait(ctx); err != nil {
			return err
		}
	}
}

// consume reads frames sequentially until the connection fails or the
// context is canceled. One frame, one decode+dispatch cycle; no frame
// outlives its cycle.
func (l *Listener) consume(ctx context.Context, conn ports.StreamConn, state *domain.SessionState) error {
	for {
		data, err := conn.ReadFrame(ctx)
		if err != nil {
			return err
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			l.logger.Warn("frame decode failed",
				ports.String("session", conn.SessionID()),
				ports.Err(err),
			)
			if l.emitter != nil {
				l.emitter.OnDecodeError(err)
			}
			continue
		}
		if msg == nil {
			// Not a state frame; other envelope kinds share the stream.
			continue
		}

		state.ObserveFrame(msg)

		summary, err := Dispatch(msg)
		if err != nil {
			l.logger.Error("protocol violation",
				ports.String("session", conn.SessionID()),
				ports.Err(err),
			)
			if l.emitter != nil {
				l.emitter.OnDecodeError(err)
			}
			continue
		}

		if summary.HasThrow {
			l.logger.Info("throw detected",
				ports.String("event", summary.Event.String()),
				ports.String("status", summary.Status.String()),
				ports.Int("num_throws", summary.NumThrows),
				ports.String("segment", summary.SegmentName),
				ports.Int("score", summary.Score),
			)
			if l.emitter != nil {
				l.emitter.OnThrow(summary)
			}
			l.saveState(ctx, state)
		} else {
			l.logger.Info("board event",
				ports.String("event", summary.Event.String()),
				ports.String("status", summary.Status.String()),
			)
			if l.emitter != nil {
				l.emitter.OnBoardEvent(summary)
			}
		}
	}
}

func (l *Listener) saveState(ctx context.Context, state *domain.SessionState) {
	state.UpdatedAt = time.Now().UTC()
	if err := l.stateRepo.Save(ctx, *state); err != nil {
		l.logger.Error("failed to save session state", ports.Err(err))
	}
}
