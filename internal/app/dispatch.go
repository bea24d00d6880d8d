package app

import (
	"fmt"

	"github.com/bullseye-labs/boardlink/internal/domain"
)

// Summary is the dispatch result for one decoded frame. For throw-detected
// frames it carries the scored segment; for everything else only the event
// and status are populated.
type Summary struct {
	Event     domain.EventType
	Status    domain.StatusType
	NumThrows int

	// SegmentName and Score are set only when HasThrow is true.
	SegmentName string
	Score       int
	HasThrow    bool
}

// Dispatch inspects a decoded message and derives the throw score when the
// frame reports a detected throw. It is pure: no I/O, one structural branch.
// Connected and Running are deliberately not inspected; they ride along on
// the Message for the caller.
//
// A throw-detected frame with an empty throw list is a contract violation by
// the board and returns an error wrapping domain.ErrNoThrows rather than a
// guessed fallback.
func Dispatch(msg *domain.Message) (Summary, error) {
	if msg.Event != domain.EventThrowDetected {
		return Summary{Event: msg.Event, Status: msg.Status}, nil
	}

	latest, ok := msg.LatestThrow()
	if !ok {
		return Summary{}, fmt.Errorf("%w: event %q", domain.ErrNoThrows, msg.Event)
	}

	seg := latest.Segment
	return Summary{
		Event:       msg.Event,
		Status:      msg.Status,
		NumThrows:   msg.NumThrows,
		SegmentName: seg.Name,
		Score:       seg.Score(),
		HasThrow:    true,
	}, nil
}
