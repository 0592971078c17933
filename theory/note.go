// Package theory holds the pitch model shared by the rest of the engine:
// pitch classes, notes, open strings and tunings.
package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// Degree is one of the 12 pitch classes, indexed chromatically from C.
// Spelling is sharps-only; flats are never produced or accepted.
type Degree int

const (
	C Degree = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// DegreeNames is the canonical sharps-only spelling, indexed by Degree.
var DegreeNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (d Degree) String() string {
	return DegreeNames[((int(d)%12)+12)%12]
}

// ParseDegree parses a canonical sharps-only degree name. Flats are not
// accepted; callers needing flat spellings normalize before calling this.
func ParseDegree(name string) (Degree, error) {
	name = strings.TrimSpace(name)
	for i, n := range DegreeNames {
		if strings.EqualFold(n, name) {
			return Degree(i), nil
		}
	}
	return 0, fmt.Errorf("theory: unknown degree %q", name)
}

// Note is a pitch identity: a degree at an octave. Two notes are equal iff
// both components match, and are ordered by MIDI number.
type Note struct {
	Degree Degree
	Octave int
}

// MIDI returns the MIDI note number for n: 12*(octave+1) + pitch-class index.
func (n Note) MIDI() int {
	return MIDINumber(n)
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Degree, n.Octave)
}

// MIDINumber converts a Note to its MIDI number.
func MIDINumber(n Note) int {
	return 12*(n.Octave+1) + int(n.Degree)
}

// NoteFromMIDI converts a MIDI number to a Note. Bijective over the range
// expressible by (Degree, int) pairs; there is no invalid input short of
// values that would overflow int arithmetic, which is a programmer error.
func NoteFromMIDI(n int) Note {
	degree := ((n % 12) + 12) % 12
	octave := (n-degree)/12 - 1
	return Note{Degree: Degree(degree), Octave: octave}
}

// ParseNote parses a note name like "E2", "C#4", "F#-1". Flats are rejected
// for the same reason ParseDegree rejects them.
func ParseNote(name string) (Note, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Note{}, fmt.Errorf("theory: empty note name")
	}

	degreeLen := 1
	if len(name) > 1 && name[1] == '#' {
		degreeLen = 2
	}
	if len(name) <= degreeLen {
		return Note{}, fmt.Errorf("theory: malformed note name %q", name)
	}

	degree, err := ParseDegree(name[:degreeLen])
	if err != nil {
		return Note{}, fmt.Errorf("theory: parsing note %q: %w", name, err)
	}

	octave, err := strconv.Atoi(name[degreeLen:])
	if err != nil {
		return Note{}, fmt.Errorf("theory: parsing octave in %q: %w", name, err)
	}

	return Note{Degree: degree, Octave: octave}, nil
}

// String is an open string: its sounding Note plus its ordinal index on the
// instrument (0 = lowest-indexed string per the tuning).
type String struct {
	Open  Note
	Index int
}

// Tuning is an ordered sequence of open strings. Invariant: string indices
// are exactly 0..N-1, assigned by position in Strings.
type Tuning struct {
	Strings []String
}

// NewTuning builds a Tuning from open-string notes, lowest string first,
// assigning indices 0..N-1 in order.
func NewTuning(open ...Note) Tuning {
	strings := make([]String, len(open))
	for i, n := range open {
		strings[i] = String{Open: n, Index: i}
	}
	return Tuning{Strings: strings}
}

// Validate checks the invariants required before a Tuning can back a
// fretboard graph: at least one string, indices 0..N-1 in order, and open
// strings strictly ascending in MIDI number.
func (t Tuning) Validate() error {
	if len(t.Strings) == 0 {
		return fmt.Errorf("%w: tuning has no strings", ErrInvalidTuning)
	}
	for i, s := range t.Strings {
		if s.Index != i {
			return fmt.Errorf("%w: string %d has index %d, want %d", ErrInvalidTuning, i, s.Index, i)
		}
		if i > 0 && s.Open.MIDI() <= t.Strings[i-1].Open.MIDI() {
			return fmt.Errorf("%w: string %d (%s) is not higher than string %d (%s)",
				ErrInvalidTuning, i, s.Open, i-1, t.Strings[i-1].Open)
		}
	}
	return nil
}

// ErrInvalidTuning is the sentinel for malformed tunings.
var ErrInvalidTuning = fmt.Errorf("theory: invalid tuning")

// StandardTuning is six-string standard guitar tuning: E2 A2 D3 G3 B3 E4.
func StandardTuning() Tuning {
	return NewTuning(
		Note{E, 2},
		Note{A, 2},
		Note{D, 3},
		Note{G, 3},
		Note{B, 3},
		Note{E, 4},
	)
}
