package ports

import "context"

// BoardController issues fire-and-forget commands against the board's
// control endpoints. Implementations send the request and report transport
// success or failure; response bodies are never parsed and no command is
// retried.
type BoardController interface {
	// Start resumes throw detection (PUT /api/start).
	Start(ctx context.Context) error

	// Stop pauses throw detection (PUT /api/stop).
	Stop(ctx context.Context) error

	// Reset forces the board out of a stuck state (POST /api/reset).
	Reset(ctx context.Context) error
}
