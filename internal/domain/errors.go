package domain

import "errors"

// Sentinel errors returned by the public API. Wrapped variants carry extra
// detail (field paths, offending values) and remain errors.Is-checkable.
var (
	// ErrMissingField is returned when a required field is absent from a
	// state frame. The wrapping error names the JSON path.
	ErrMissingField = errors.New("boardlink: missing required field")

	// ErrUnknownStatus is returned when the board reports a status string
	// outside the known set.
	ErrUnknownStatus = errors.New("boardlink: unknown status value")

	// ErrUnknownEvent is returned when the board reports an event string
	// outside the known set.
	ErrUnknownEvent = errors.New("boardlink: unknown event value")

	// ErrUnknownBed is returned when a throw segment carries an unknown
	// bed string.
	ErrUnknownBed = errors.New("boardlink: unknown segment bed")

	// ErrNoThrows is returned when a throw-detected frame carries an empty
	// throw list. The board guarantees at least one entry; an empty list is
	// a protocol violation on its side.
	ErrNoThrows = errors.New("boardlink: throw event carried no throws")

	// ErrControlRequest is returned when a start/stop/reset command fails
	// at the transport layer or the board answers with a non-2xx status.
	ErrControlRequest = errors.New("boardlink: control request failed")

	// ErrAlreadyRunning is returned when Start() is called on a running client.
	ErrAlreadyRunning = errors.New("boardlink: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped client.
	ErrNotRunning = errors.New("boardlink: not running")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("boardlink: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("boardlink: invalid configuration")

	// ErrReconnectsExhausted is returned when the reconnect policy gives up.
	ErrReconnectsExhausted = errors.New("boardlink: reconnect attempts exhausted")
)
