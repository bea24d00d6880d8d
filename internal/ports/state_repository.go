package ports

import (
	"context"

	"github.com/bullseye-labs/boardlink/internal/domain"
)

// StateRepository persists session state between runs.
type StateRepository interface {
	// Load retrieves the last saved session state.
	// Returns a zero state and nil error when nothing was saved yet.
	Load(ctx context.Context) (domain.SessionState, error)

	// Save persists the session state. Implementations should write
	// atomically so a crash never leaves a corrupt file behind.
	Save(ctx context.Context, state domain.SessionState) error
}
