package decode

import (
	"testing"

	"fretpath/fingering"
	"fretpath/fretboard"
	"fretpath/theory"
)

func testGraph(t *testing.T) *fretboard.Graph {
	t.Helper()
	g, err := fretboard.Build(theory.StandardTuning(), fretboard.DefaultFrets, fretboard.DefaultScaleLength)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func fingeringAt(t *testing.T, g *fretboard.Graph, stringIdx, fret int) fingering.Fingering {
	t.Helper()
	p, ok := g.At(stringIdx, fret)
	if !ok {
		t.Fatalf("no position at string %d fret %d", stringIdx, fret)
	}
	return fingering.Fingering{Positions: []fretboard.Position{p}}
}

func mustNote(t *testing.T, s string) theory.Note {
	t.Helper()
	n, err := theory.ParseNote(s)
	if err != nil {
		t.Fatalf("ParseNote(%q): %v", s, err)
	}
	return n
}

func chordOf(t *testing.T, names ...string) fingering.Chord {
	t.Helper()
	notes := make([]theory.Note, len(names))
	for i, n := range names {
		notes[i] = mustNote(t, n)
	}
	return fingering.Chord{Notes: notes}
}

func TestBankAddChordAllocatesFreshStatesPerChord(t *testing.T) {
	g := testGraph(t)
	bank := NewBank()

	f := fingeringAt(t, g, 0, 0)
	col1 := bank.AddChord([]fingering.Fingering{f})
	col2 := bank.AddChord([]fingering.Fingering{f})

	if bank.NumStates() != 2 {
		t.Fatalf("NumStates() = %d, want 2 (each chord gets its own block of states, even for an identical fingering)", bank.NumStates())
	}
	if col1[0] == col2[0] {
		t.Fatalf("expected distinct bank slots for the two chords, got %d and %d", col1[0], col2[0])
	}
	if bank.State(col1[0]).Key() != f.Key() || bank.State(col2[0]).Key() != f.Key() {
		t.Fatalf("expected both slots to hold the same fingering value, got %+v and %+v", bank.State(col1[0]), bank.State(col2[0]))
	}
}

func TestBankEmissionShape(t *testing.T) {
	g := testGraph(t)
	bank := NewBank()

	a := fingeringAt(t, g, 0, 0)
	b := fingeringAt(t, g, 1, 0)
	col0 := bank.AddChord([]fingering.Fingering{a})
	col1 := bank.AddChord([]fingering.Fingering{a, b})

	em := bank.Emission()
	if len(em) != bank.NumStates() {
		t.Fatalf("Emission() has %d rows, want %d", len(em), bank.NumStates())
	}
	for _, row := range em {
		if len(row) != bank.NumSteps() {
			t.Fatalf("Emission() row has %d columns, want %d", len(row), bank.NumSteps())
		}
	}

	step0Idx := col0[0]
	step1AIdx, step1BIdx := col1[0], col1[1]

	if em[step0Idx][0] != 1 {
		t.Errorf("step 0's own state should be valid at step 0")
	}
	if em[step0Idx][1] != 0 {
		t.Errorf("step 0's state should not be valid at step 1, even though step 1 also contains fingering a, because it occupies its own fresh slot")
	}
	if em[step1AIdx][1] != 1 || em[step1BIdx][1] != 1 {
		t.Errorf("both of step 1's states should be valid at step 1")
	}
	if em[step1AIdx][0] != 0 || em[step1BIdx][0] != 0 {
		t.Errorf("step 1's states should not be valid at step 0")
	}
}
