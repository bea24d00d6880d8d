package domain

import "time"

// SessionState is the operational snapshot persisted between runs. It records
// connection bookkeeping only; throw history stays on the board.
type SessionState struct {
	// SessionID identifies the current (or last) stream connection.
	SessionID string `json:"session_id"`

	// ConnectedAt is when the current session was established.
	ConnectedAt time.Time `json:"connected_at"`

	// DisconnectedAt is when the last session ended; zero while connected.
	DisconnectedAt time.Time `json:"disconnected_at,omitempty"`

	// FramesSeen counts state frames decoded this session.
	FramesSeen int `json:"frames_seen"`

	// ThrowsDetected counts throw-detected frames this session.
	ThrowsDetected int `json:"throws_detected"`

	// LastStatus is the wire string of the last observed board status.
	LastStatus string `json:"last_status,omitempty"`

	// LastEvent is the wire string of the last observed board event.
	LastEvent string `json:"last_event,omitempty"`

	// UpdatedAt is when this snapshot was written.
	UpdatedAt time.Time `json:"updated_at"`
}

// ObserveFrame updates the counters for one decoded frame.
func (s *SessionState) ObserveFrame(msg *Message) {
	s.FramesSeen++
	if msg.Event == EventThrowDetected {
		s.ThrowsDetected++
	}
	s.LastStatus = msg.Status.String()
	s.LastEvent = msg.Event.String()
}
