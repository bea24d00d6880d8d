// Package ws implements the stream ports on top of gorilla/websocket.
package ws

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/bullseye-labs/boardlink/internal/ports"
)

const (
	handshakeTimeout = 10 * time.Second

	// maxFrameBytes bounds a single state frame. Frames carry at most a
	// handful of throws and stay far below this.
	maxFrameBytes = 1 << 20
)

// Dialer implements ports.StreamDialer using gorilla/websocket.
type Dialer struct {
	dialer *websocket.Dialer
	logger ports.Logger
}

// NewDialer creates a stream dialer.
func NewDialer(logger ports.Logger) *Dialer {
	return &Dialer{
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
		},
		logger: logger,
	}
}

// Dial connects to the board's event stream endpoint. Each connection gets
// a fresh session ID for log correlation. Canceling ctx closes the
// connection and unblocks any pending read.
func (d *Dialer) Dial(ctx context.Context, endpoint string) (ports.StreamConn, error) {
	ws, resp, err := d.dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("boardlink: stream handshake (%d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("boardlink: stream dial: %w", err)
	}
	ws.SetReadLimit(maxFrameBytes)

	c := &Conn{
		ws:        ws,
		sessionID: uuid.NewString(),
		done:      make(chan struct{}),
	}

	// gorilla reads do not take a context; closing the socket is the only
	// way to unblock one.
	go func() {
		select {
		case <-ctx.Done():
			_ = c.Close()
		case <-c.done:
		}
	}()

	d.logger.Debug("stream dialed",
		ports.String("endpoint", endpoint),
		ports.String("session", c.sessionID),
	)

	return c, nil
}

// Conn is one established websocket connection to the board.
type Conn struct {
	ws        *websocket.Conn
	sessionID string

	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

// ReadFrame blocks until the next frame arrives or the connection fails.
// Returns the context error when the read was unblocked by cancellation.
func (c *Conn) ReadFrame(ctx context.Context) ([]byte, error) {
	_, data, err := c.ws.ReadMessage()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return nil, fmt.Errorf("boardlink: stream closed by board: %w", err)
		}
		return nil, fmt.Errorf("boardlink: stream read: %w", err)
	}
	return data, nil
}

// Close tears down the connection. Safe to call more than once.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		c.closeErr = c.ws.Close()
	})
	return c.closeErr
}

// SessionID returns the identifier assigned to this connection.
func (c *Conn) SessionID() string {
	return c.sessionID
}
