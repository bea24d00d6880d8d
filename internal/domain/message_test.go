package domain

import (
	"errors"
	"testing"
)

func TestParseStatusType_KnownValues(t *testing.T) {
	tests := []struct {
		wire string
		want StatusType
	}{
		{"Starting", StatusStarting},
		{"Stopping", StatusStopping},
		{"Stopped", StatusStopped},
		{"Throw", StatusThrow},
		{"Takeout", StatusTakeout},
		{"Takeout in progress", StatusTakeoutInProgress},
		{"Calibrating", StatusCalibrating},
	}

	for _, tt := range tests {
		got, err := ParseStatusType(tt.wire)
		if err != nil {
			t.Errorf("ParseStatusType(%q) error = %v", tt.wire, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatusType(%q) = %v, want %v", tt.wire, got, tt.want)
		}
		if got.String() != tt.wire {
			t.Errorf("StatusType(%v).String() = %q, want %q", got, got.String(), tt.wire)
		}
	}
}

func TestParseStatusType_Unknown(t *testing.T) {
	for _, wire := range []string{"", "throw", "Paused", "TAKEOUT"} {
		_, err := ParseStatusType(wire)
		if !errors.Is(err, ErrUnknownStatus) {
			t.Errorf("ParseStatusType(%q) error = %v, want ErrUnknownStatus", wire, err)
		}
	}
}

func TestParseEventType_KnownValues(t *testing.T) {
	tests := []struct {
		wire string
		want EventType
	}{
		{"Starting", EventStarting},
		{"Started", EventStarted},
		{"Stopping", EventStopping},
		{"Stopped", EventStopped},
		{"Throw detected", EventThrowDetected},
		{"Takeout started", EventTakeoutStarted},
		{"Takeout finished", EventTakeoutFinished},
		{"Manual reset", EventManualReset},
		{"Calibration started", EventCalibrationStarted},
		{"Calibration finished", EventCalibrationFinished},
		{"Calibration failed", EventCalibrationFailed},
	}

	for _, tt := range tests {
		got, err := ParseEventType(tt.wire)
		if err != nil {
			t.Errorf("ParseEventType(%q) error = %v", tt.wire, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEventType(%q) = %v, want %v", tt.wire, got, tt.want)
		}
		if got.String() != tt.wire {
			t.Errorf("EventType(%v).String() = %q, want %q", got, got.String(), tt.wire)
		}
	}
}

func TestParseEventType_Unknown(t *testing.T) {
	for _, wire := range []string{"", "Throw Detected", "throw detected", "Reset"} {
		_, err := ParseEventType(wire)
		if !errors.Is(err, ErrUnknownEvent) {
			t.Errorf("ParseEventType(%q) error = %v, want ErrUnknownEvent", wire, err)
		}
	}
}

func TestMessage_LatestThrow(t *testing.T) {
	empty := Message{}
	if _, ok := empty.LatestThrow(); ok {
		t.Error("LatestThrow() on empty message returned ok")
	}

	msg := Message{
		Throws: []Throw{
			{Segment: Segment{Name: "S5", Multiplier: 1, Number: 5}},
			{Segment: Segment{Name: "T20", Multiplier: 3, Number: 20}},
		},
	}
	latest, ok := msg.LatestThrow()
	if !ok {
		t.Fatal("LatestThrow() returned !ok for non-empty throws")
	}
	if latest.Segment.Name != "T20" {
		t.Errorf("LatestThrow().Segment.Name = %q, want T20", latest.Segment.Name)
	}
}

func TestSessionState_ObserveFrame(t *testing.T) {
	var state SessionState

	state.ObserveFrame(&Message{Status: StatusThrow, Event: EventThrowDetected})
	state.ObserveFrame(&Message{Status: StatusTakeout, Event: EventTakeoutStarted})

	if state.FramesSeen != 2 {
		t.Errorf("FramesSeen = %d, want 2", state.FramesSeen)
	}
	if state.ThrowsDetected != 1 {
		t.Errorf("ThrowsDetected = %d, want 1", state.ThrowsDetected)
	}
	if state.LastStatus != "Takeout" {
		t.Errorf("LastStatus = %q, want Takeout", state.LastStatus)
	}
	if state.LastEvent != "Takeout started" {
		t.Errorf("LastEvent = %q, want %q", state.LastEvent, "Takeout started")
	}
}
