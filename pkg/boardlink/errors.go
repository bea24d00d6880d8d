package boardlink

import "github.com/bullseye-labs/boardlink/internal/domain"

// Sentinel errors re-exported for errors.Is checks by embedders.
var (
	ErrAlreadyRunning      = domain.ErrAlreadyRunning
	ErrNotRunning          = domain.ErrNotRunning
	ErrShutdownTimeout     = domain.ErrShutdownTimeout
	ErrInvalidConfig       = domain.ErrInvalidConfig
	ErrControlRequest      = domain.ErrControlRequest
	ErrReconnectsExhausted = domain.ErrReconnectsExhausted
	ErrMissingField        = domain.ErrMissingField
	ErrUnknownStatus       = domain.ErrUnknownStatus
	ErrUnknownEvent        = domain.ErrUnknownEvent
	ErrUnknownBed          = domain.ErrUnknownBed
	ErrNoThrows            = domain.ErrNoThrows
)
