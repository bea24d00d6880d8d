package domain

import "fmt"

// SegmentBed identifies the physical zone category a dart landed in.
type SegmentBed int

const (
	BedSingleInner SegmentBed = iota
	BedSingleOuter
	BedDouble
	BedTriple
	BedOutside
)

// String returns the wire representation of the bed.
func (b SegmentBed) String() string {
	switch b {
	case BedSingleInner:
		return "SingleInner"
	case BedSingleOuter:
		return "SingleOuter"
	case BedDouble:
		return "Double"
	case BedTriple:
		return "Triple"
	case BedOutside:
		return "Outside"
	default:
		return "Unknown"
	}
}

// ParseSegmentBed maps a wire string to a SegmentBed.
// Returns an error wrapping ErrUnknownBed for anything outside the closed set.
func ParseSegmentBed(s string) (SegmentBed, error) {
	switch s {
	case "SingleInner":
		return BedSingleInner, nil
	case "SingleOuter":
		return BedSingleOuter, nil
	case "Double":
		return BedDouble, nil
	case "Triple":
		return BedTriple, nil
	case "Outside":
		return BedOutside, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBed, s)
	}
}

// Segment is the smallest scoreable unit of the board.
// Multiplier and Bed are trusted from the wire; the client does not
// re-derive one from the other.
type Segment struct {
	// Bed is the zone category of the segment.
	Bed SegmentBed

	// Multiplier is 1 for single, 2 for double, 3 for triple, 0 for miss.
	Multiplier int

	// Number is 1-20 for standard wedges, 25 for the bullseye, 0 for miss.
	Number int

	// Name is the human-readable label, like "T20" or "S1".
	Name string
}

// Score returns the point value of the segment.
func (s Segment) Score() int {
	return s.Multiplier * s.Number
}

// Throw is a single dart detected by the board.
type Throw struct {
	Segment Segment
}
