package boardlink

import "github.com/bullseye-labs/boardlink/internal/app"

// State represents the lifecycle state of a Board instance.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	case StateCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// StateChangeEvent is emitted on every lifecycle transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// ThrowEvent is emitted for every throw-detected frame. Event and Status
// carry the board's wire labels; Score is Multiplier * Number of the most
// recently detected dart.
type ThrowEvent struct {
	Event     string
	Status    string
	NumThrows int
	Segment   string
	Score     int
}

// BoardEvent is emitted for every non-throw state frame.
type BoardEvent struct {
	Event  string
	Status string
}

// StreamErrorEvent is emitted on dial failures and disconnects.
// Retryable reports whether the client will redial.
type StreamErrorEvent struct {
	Err       error
	Retryable bool
}

// DecodeErrorEvent is emitted when one frame fails to decode. The stream
// continues with the next frame.
type DecodeErrorEvent struct {
	Err error
}

// EventHandler receives notifications from the board client. All methods are
// called synchronously from the consuming goroutine; implementations should
// return quickly. Embed BaseEventHandler for no-op defaults.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
	OnThrow(event ThrowEvent)
	OnBoardEvent(event BoardEvent)
	OnStreamError(event StreamErrorEvent)
	OnDecodeError(event DecodeErrorEvent)
}

// BaseEventHandler provides no-op implementations of every EventHandler
// method. Embed it to implement only the callbacks you care about.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(StateChangeEvent) {}
func (BaseEventHandler) OnThrow(ThrowEvent)             {}
func (BaseEventHandler) OnBoardEvent(BoardEvent)        {}
func (BaseEventHandler) OnStreamError(StreamErrorEvent) {}
func (BaseEventHandler) OnDecodeError(DecodeErrorEvent) {}

// eventEmitterWrapper adapts EventHandler to the internal emitter interfaces.
// A nil handler turns every emission into a no-op.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: convertState(previous),
		Current:  convertState(current),
		Reason:   reason,
	})
}

func (e *eventEmitterWrapper) OnThrow(summary app.Summary) {
	if e.handler == nil {
		return
	}
	e.handler.OnThrow(ThrowEvent{
		Event:     summary.Event.String(),
		Status:    summary.Status.String(),
		NumThrows: summary.NumThrows,
		Segment:   summary.SegmentName,
		Score:     summary.Score,
	})
}

func (e *eventEmitterWrapper) OnBoardEvent(summary app.Summary) {
	if e.handler == nil {
		return
	}
	e.handler.OnBoardEvent(BoardEvent{
		Event:  summary.Event.String(),
		Status: summary.Status.String(),
	})
}

func (e *eventEmitterWrapper) OnStreamError(err error, retryable bool) {
	if e.handler == nil {
		return
	}
	e.handler.OnStreamError(StreamErrorEvent{Err: err, Retryable: retryable})
}

func (e *eventEmitterWrapper) OnDecodeError(err error) {
	if e.handler == nil {
		return
	}
	e.handler.OnDecodeError(DecodeErrorEvent{Err: err})
}

func convertState(s app.State) State {
	switch s {
	case app.StateStopped:
		return StateStopped
	case app.StateStarting:
		return StateStarting
	case app.StateRunning:
		return StateRunning
	case app.StateStopping:
		return StateStopping
	case app.StateCrashed:
		return StateCrashed
	default:
		return StateStopped
	}
}
