package domain

import "fmt"

// StatusType is the board's current operating state as reported remotely.
type StatusType int

const (
	StatusStarting StatusType = iota
	StatusStopping
	StatusStopped
	StatusThrow
	StatusTakeout
	StatusTakeoutInProgress
	StatusCalibrating
)

// String returns the wire representation of the status.
func (s StatusType) String() string {
	switch s {
	case StatusStarting:
		return "Starting"
	case StatusStopping:
		return "Stopping"
	case StatusStopped:
		return "Stopped"
	case StatusThrow:
		return "Throw"
	case StatusTakeout:
		return "Takeout"
	case StatusTakeoutInProgress:
		return "Takeout in progress"
	case StatusCalibrating:
		return "Calibrating"
	default:
		return "Unknown"
	}
}

// ParseStatusType maps a wire string to a StatusType.
// Returns an error wrapping ErrUnknownStatus for anything outside the closed set.
func ParseStatusType(s string) (StatusType, error) {
	switch s {
	case "Starting":
		return StatusStarting, nil
	case "Stopping":
		return StatusStopping, nil
	case "Stopped":
		return StatusStopped, nil
	case "Throw":
		return StatusThrow, nil
	case "Takeout":
		return StatusTakeout, nil
	case "Takeout in progress":
		return StatusTakeoutInProgress, nil
	case "Calibrating":
		return StatusCalibrating, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// EventType is the discrete occurrence that triggered a state frame.
type EventType int

const (
	EventStarting EventType = iota
	EventStarted
	EventStopping
	EventStopped
	EventThrowDetected
	EventTakeoutStarted
	EventTakeoutFinished
	EventManualReset
	EventCalibrationStarted
	EventCalibrationFinished
	EventCalibrationFailed
)

// String returns the wire representation of the event.
func (e EventType) String() string {
	switch e {
	case EventStarting:
		return "Starting"
	case EventStarted:
		return "Started"
	case EventStopping:
		return "Stopping"
	case EventStopped:
		return "Stopped"
	case EventThrowDetected:
		return "Throw detected"
	case EventTakeoutStarted:
		return "Takeout started"
	case EventTakeoutFinished:
		return "Takeout finished"
	case EventManualReset:
		return "Manual reset"
	case EventCalibrationStarted:
		return "Calibration started"
	case EventCalibrationFinished:
		return "Calibration finished"
	case EventCalibrationFailed:
		return "Calibration failed"
	default:
		return "Unknown"
	}
}

// ParseEventType maps a wire string to an EventType.
// Returns an error wrapping ErrUnknownEvent for anything outside the closed set.
func ParseEventType(s string) (EventType, error) {
	switch s {
	case "Starting":
		return EventStarting, nil
	case "Started":
		return EventStarted, nil
	case "Stopping":
		return EventStopping, nil
	case "Stopped":
		return EventStopped, nil
	case "Throw detected":
		return EventThrowDetected, nil
	case "Takeout started":
		return EventTakeoutStarted, nil
	case "Takeout finished":
		return EventTakeoutFinished, nil
	case "Manual reset":
		return EventManualReset, nil
	case "Calibration started":
		return EventCalibrationStarted, nil
	case "Calibration finished":
		return EventCalibrationFinished, nil
	case "Calibration failed":
		return EventCalibrationFailed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, s)
	}
}

// Message is one decoded state frame from the board. It is built fresh per
// inbound frame and never mutated afterwards; the board itself is the source
// of throw history, not this client.
type Message struct {
	// Connected reports whether the board hardware is attached.
	Connected bool

	// Running reports whether the detection loop is active or paused.
	Running bool

	// Status is the board's operating state at the time of the frame.
	Status StatusType

	// Event is what triggered this frame.
	Event EventType

	// NumThrows is the count of throws the board currently holds in memory.
	NumThrows int

	// Throws are the throws in board memory, oldest first; the last entry
	// is the most recently detected dart. Empty when the board reported
	// none (the wire field is omitted in that case).
	Throws []Throw
}

// LatestThrow returns the most recently detected throw.
// The second return is false when no throws are present.
func (m *Message) LatestThrow() (Throw, bool) {
	if len(m.Throws) == 0 {
		return Throw{}, false
	}
	return m.Throws[len(m.Throws)-1], true
}
