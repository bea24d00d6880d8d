package ports

import "context"

// StreamDialer opens a connection to the board's event stream.
// Implementations handle the websocket handshake and the type=state
// subscription filter.
type StreamDialer interface {
	// Dial connects to the given stream endpoint. The returned connection
	// is ready to read frames from.
	Dial(ctx context.Context, endpoint string) (StreamConn, error)
}

// StreamConn is one established event stream connection. Frames are read
// sequentially by a single goroutine; implementations are not required to
// support concurrent reads.
type StreamConn interface {
	// ReadFrame blocks until the next text frame arrives, the context is
	// canceled, or the connection fails. Returns the raw frame payload.
	ReadFrame(ctx context.Context) ([]byte, error)

	// Close tears down the connection. Safe to call more than once.
	Close() error

	// SessionID returns the identifier assigned to this connection,
	// used for log correlation across reconnects.
	SessionID() string
}
