// Package fretboard builds the static weighted graph of physical positions
// on a fretted instrument.
package fretboard

import (
	"fmt"
	"math"

	"fretpath/theory"
)

// DefaultFrets is the default number of frets built when none is given.
const DefaultFrets = 20

// DefaultScaleLength is the default scale length in arbitrary physical
// units (the source's unit is unspecified; 650 matches a typical guitar
// scale length in millimeters).
const DefaultScaleLength = 650.0

// fretRatio is the rule-of-18 divisor: each fret consumes
// remaining_length / fretRatio from the string's remaining vibrating length.
const fretRatio = 17.817

// stringAxisWeight de-emphasizes string-direction motion in the distance
// metric; must be preserved bit-for-bit.
const stringAxisWeight = 6.0

// Position is a single playable location: a string index, a fret index,
// and the note sounded there. Invariant: Note equals the open string's
// note transposed up by Fret semitones.
type Position struct {
	String int
	Fret   int
	Note   theory.Note
}

// Graph is the complete weighted graph over all Positions of a Tuning up
// to NFrets. It is immutable once built and safe to share across
// goroutines. Nodes are keyed by Position (not Note): two
// distinct positions may sound the same note, and both must be
// independently addressable.
type Graph struct {
	Tuning Tuning
	NFrets int

	positions  []Position            // all positions, row-major by string then fret
	byString   [][]Position          // byString[stringIdx][fretIdx]
	byNote     map[theory.Note][]Position
	fretHeight []float64 // fretHeight[f] = physical distance of fret f from the nut
}

// Tuning is a local alias kept for readability in this package's API;
// it is exactly theory.Tuning.
type Tuning = theory.Tuning

// Build constructs the Fretboard Graph for tuning over nFrets frets
// (0..nFrets inclusive) at the given scale length. It validates the
// tuning first.
func Build(tuning Tuning, nFrets int, scaleLength float64) (*Graph, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if nFrets < 0 {
		return nil, fmt.Errorf("%w: negative fret count %d", theory.ErrInvalidTuning, nFrets)
	}
	if scaleLength <= 0 {
		return nil, fmt.Errorf("%w: non-positive scale length %v", theory.ErrInvalidTuning, scaleLength)
	}

	g := &Graph{
		Tuning:     tuning,
		NFrets:     nFrets,
		byNote:     make(map[theory.Note][]Position),
		fretHeight: fretHeights(nFrets, scaleLength),
	}

	g.byString = make([][]Position, len(tuning.Strings))
	for _, s := range tuning.Strings {
		row := make([]Position, nFrets+1)
		for f := 0; f <= nFrets; f++ {
			pos := Position{
				String: s.Index,
				Fret:   f,
				Note:   theory.NoteFromMIDI(s.Open.MIDI() + f),
			}
			row[f] = pos
			g.positions = append(g.positions, pos)
			g.byNote[pos.Note] = append(g.byNote[pos.Note], pos)
		}
		g.byString[s.Index] = row
	}

	return g, nil
}

// fretHeights computes fret_y(0..nFrets) via the rule-of-18 geometric
// progression: fret f consumes remaining/fretRatio of the string's
// remaining vibrating length.
func fretHeights(nFrets int, scaleLength float64) []float64 {
	heights := make([]float64, nFrets+1)
	remaining := scaleLength
	for f := 1; f <= nFrets; f++ {
		span := remaining / fretRatio
		heights[f] = heights[f-1] + span
		remaining -= span
	}
	return heights
}

// PositionsForNote returns every Position on the graph sounding note,
// typically one per string the note is reachable on.
func (g *Graph) PositionsForNote(note theory.Note) []Position {
	return g.byNote[note]
}

// At returns the Position at (stringIdx, fret), or false if out of range.
func (g *Graph) At(stringIdx, fret int) (Position, bool) {
	if stringIdx < 0 || stringIdx >= len(g.byString) {
		return Position{}, false
	}
	row := g.byString[stringIdx]
	if fret < 0 || fret >= len(row) {
		return Position{}, false
	}
	return row[fret], true
}

// Distance computes the physical distance between two positions: Euclidean
// over (string/stringAxisWeight, fret_y(fret)).
func (g *Graph) Distance(p1, p2 Position) float64 {
	x1, y1 := float64(p1.String)/stringAxisWeight, g.fretHeight[p1.Fret]
	x2, y2 := float64(p2.String)/stringAxisWeight, g.fretHeight[p2.Fret]
	dx, dy := x1-x2, y1-y2
	return math.Sqrt(dx*dx + dy*dy)
}

// NStrings returns the number of strings in the tuning.
func (g *Graph) NStrings() int {
	return len(g.byString)
}
