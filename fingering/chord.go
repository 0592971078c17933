// Package fingering enumerates playable fingerings for a chord and scores
// the difficulty of playing one fingering immediately after another.
package fingering

import (
	"errors"
	"fmt"

	"fretpath/fretboard"
	"fretpath/theory"
)

// Chord is a set of required pitches at one time-step. Order is not
// semantic for the final output, but candidate enumeration considers every
// permutation of the note list.
type Chord struct {
	Notes []theory.Note
}

// Fingering is an ordered tuple of Positions, one per required pitch, with
// no two positions sharing a string. The order is the order produced by
// enumeration and feeds the path-length difficulty factor — it is a
// meaningful part of a Fingering's identity for difficulty purposes, even
// though two Fingerings with the same position set in different orders are
// deduplicated to one candidate by Enumerate.
type Fingering struct {
	Positions []fretboard.Position
}

// Empty reports whether f carries no positions — the "previous fingering"
// at the start of a sequence.
func (f Fingering) Empty() bool {
	return len(f.Positions) == 0
}

// Strings returns the set of string indices used by f.
func (f Fingering) Strings() map[int]struct{} {
	set := make(map[int]struct{}, len(f.Positions))
	for _, p := range f.Positions {
		set[p.String] = struct{}{}
	}
	return set
}

// Notes returns the multiset of notes sounded by f, in f's position order.
func (f Fingering) Notes() []theory.Note {
	notes := make([]theory.Note, len(f.Positions))
	for i, p := range f.Positions {
		notes[i] = p.Note
	}
	return notes
}

// Key returns a canonical, order-independent identity for f's position
// set: two fingerings with the same set of Positions produce the same key
// regardless of the order Enumerate discovered them in.
func (f Fingering) Key() string {
	byString := make(map[int]fretboard.Position, len(f.Positions))
	maxString := -1
	for _, p := range f.Positions {
		byString[p.String] = p
		if p.String > maxString {
			maxString = p.String
		}
	}
	key := ""
	for s := 0; s <= maxString; s++ {
		if p, ok := byString[s]; ok {
			key += fmt.Sprintf("%d:%d|", s, p.Fret)
		}
	}
	return key
}

// ErrNoFingering reports that a chord has no playable fingering at all.
var ErrNoFingering = errors.New("fingering: no playable fingering for chord")

// NoFingeringError carries the offending chord index and the pitches that
// could not be placed.
type NoFingeringError struct {
	ChordIndex int
	Unplaced   []theory.Note
}

func (e *NoFingeringError) Error() string {
	return fmt.Sprintf("fingering: chord %d has no playable fingering (unplaceable notes: %v)", e.ChordIndex, e.Unplaced)
}

func (e *NoFingeringError) Unwrap() error {
	return ErrNoFingering
}
