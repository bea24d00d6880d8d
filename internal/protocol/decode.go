package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/bullseye-labs/boardlink/internal/domain"
)

// stateFrameType is the envelope discriminant this client subscribes to.
const stateFrameType = "state"

// envelope is the outer wire structure wrapping every stream frame.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Wire structs use pointer fields so a missing required field is
// distinguishable from a zero value.
type wireMessage struct {
	Connected *bool       `json:"connected"`
	Running   *bool       `json:"running"`
	Status    *string     `json:"status"`
	Event     *string     `json:"event"`
	NumThrows *int        `json:"numThrows"`
	Throws    []wireThrow `json:"throws"`
}

type wireThrow struct {
	Segment *wireSegment `json:"segment"`
}

type wireSegment struct {
	Bed        *string `json:"bed"`
	Multiplier *int    `json:"multiplier"`
	Number     *int    `json:"number"`
	Name       *string `json:"name"`
}

// Decode parses a raw stream frame. Frames whose envelope type is not
// "state" yield (nil, nil): the frame is valid but not for this client.
// Malformed JSON, missing required fields, and unrecognized enumeration
// values return an error wrapping the matching domain sentinel.
func Decode(data []byte) (*domain.Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("boardlink: malformed frame: %w", err)
	}

	if env.Type != stateFrameType {
		return nil, nil
	}

	if len(env.Data) == 0 {
		return nil, missing("data")
	}

	var wm wireMessage
	if err := json.Unmarshal(env.Data, &wm); err != nil {
		return nil, fmt.Errorf("boardlink: malformed state frame: %w", err)
	}

	switch {
	case wm.Connected == nil:
		return nil, missing("data.connected")
	case wm.Running == nil:
		return nil, missing("data.running")
	case wm.Status == nil:
		return nil, missing("data.status")
	case wm.Event == nil:
		return nil, missing("data.event")
	case wm.NumThrows == nil:
		return nil, missing("data.numThrows")
	}

	status, err := domain.ParseStatusType(*wm.Status)
	if err != nil {
		return nil, err
	}
	event, err := domain.ParseEventType(*wm.Event)
	if err != nil {
		return nil, err
	}

	// An absent throws field means the board holds none; normalize to an
	// empty slice so downstream never tells absence from emptiness.
	throws := make([]domain.Throw, 0, len(wm.Throws))
	for i, wt := range wm.Throws {
		t, err := decodeThrow(i, wt)
		if err != nil {
			return nil, err
		}
		throws = append(throws, t)
	}

	return &domain.Message{
		Connected: *wm.Connected,
		Running:   *wm.Running,
		Status:    status,
		Event:     event,
		NumThrows: *wm.NumThrows,
		Throws:    throws,
	}, nil
}

func decodeThrow(i int, wt wireThrow) (domain.Throw, error) {
	if wt.Segment == nil {
		return domain.Throw{}, missing(throwPath(i, "segment"))
	}

	ws := wt.Segment
	switch {
	case ws.Bed == nil:
		return domain.Throw{}, missing(throwPath(i, "segment.bed"))
	case ws.Multiplier == nil:
		return domain.Throw{}, missing(throwPath(i, "segment.multiplier"))
	case ws.Number == nil:
		return domain.Throw{}, missing(throwPath(i, "segment.number"))
	case ws.Name == nil:
		return domain.Throw{}, missing(throwPath(i, "segment.name"))
	}

	bed, err := domain.ParseSegmentBed(*ws.Bed)
	if err != nil {
		return domain.Throw{}, err
	}

	return domain.Throw{
		Segment: domain.Segment{
			Bed:        bed,
			Multiplier: *ws.Multiplier,
			Number:     *ws.Number,
			Name:       *ws.Name,
		},
	}, nil
}

func missing(path string) error {
	return fmt.Errorf("%w: %s", domain.ErrMissingField, path)
}

func throwPath(i int, field string) string {
	return fmt.Sprintf("data.throws[%d].%s", i, field)
}
