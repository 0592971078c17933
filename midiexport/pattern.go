package midiexport

import (
	"fretpath/fingering"
	"fretpath/fretboard"
)

// Pattern selects how a Fingering's notes are distributed across the time
// a chord sounds for.
type Pattern int

const (
	// PatternBlock sounds every position in the Fingering together.
	PatternBlock Pattern = iota
	// PatternArpeggio spreads a Fingering's positions evenly across the
	// chord duration, in the Fingering's own position order (the order
	// Enumerate and Decode produced it in).
	PatternArpeggio
)

// Placement is one note's offset and duration within a chord's time slot.
type Placement struct {
	Position fretboard.Position
	Offset   uint32
	Duration uint32
	Velocity uint8
}

const defaultVelocity uint8 = 80

// Place expands f into Placements covering a chord duration of chordTicks.
func (p Pattern) Place(f fingering.Fingering, chordTicks uint32) []Placement {
	n := len(f.Positions)
	if n == 0 {
		return nil
	}

	switch p {
	case PatternArpeggio:
		step := chordTicks / uint32(n)
		if step == 0 {
			step = 1
		}
		placements := make([]Placement, n)
		for i, pos := range f.Positions {
			offset := uint32(i) * step
			duration := chordTicks - offset
			if duration == 0 {
				duration = step
			}
			placements[i] = Placement{Position: pos, Offset: offset, Duration: duration, Velocity: defaultVelocity}
		}
		return placements
	default: // PatternBlock
		placements := make([]Placement, n)
		for i, pos := range f.Positions {
			placements[i] = Placement{Position: pos, Offset: 0, Duration: chordTicks, Velocity: defaultVelocity}
		}
		return placements
	}
}
