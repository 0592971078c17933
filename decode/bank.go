package decode

import "fretpath/fingering"

// Bank is the growable pool of candidate Fingerings discovered across a
// decoded sequence. Each call to AddChord allocates a fresh block of bank
// slots for that chord's own candidates — a Fingering identical to one
// registered for an earlier chord still gets its own new slot, exactly as
// the source's expand_emission_matrix unconditionally stacks a new block
// of rows per chord with no cross-chord lookup. fingering.Enumerate
// already deduplicates candidates within a single chord; Bank does not
// deduplicate across chords.
//
// Bank supports incremental growth: AddChord can be called one chord at a
// time as a sequence is extended, and Emission always reflects every chord
// added so far.
type Bank struct {
	states  []fingering.Fingering
	columns [][]int // columns[t] = bank indices valid at time t
}

// NewBank returns an empty Bank.
func NewBank() *Bank {
	return &Bank{}
}

// AddChord registers candidates as the playable fingerings for the next
// time step, allocating a fresh bank slot for every candidate, and returns
// the bank indices assigned to each candidate in order.
func (b *Bank) AddChord(candidates []fingering.Fingering) []int {
	col := make([]int, len(candidates))
	for i, f := range candidates {
		idx := len(b.states)
		b.states = append(b.states, f)
		col[i] = idx
	}
	b.columns = append(b.columns, col)
	return col
}

// NumStates is the number of candidate-fingering slots in the bank so far.
func (b *Bank) NumStates() int { return len(b.states) }

// NumSteps is the number of chords added so far.
func (b *Bank) NumSteps() int { return len(b.columns) }

// State returns the fingering occupying bank slot i.
func (b *Bank) State(i int) fingering.Fingering { return b.states[i] }

// ColumnAt returns the bank indices of the fingerings valid at time t.
func (b *Bank) ColumnAt(t int) []int { return b.columns[t] }

// Emission builds the indicator emission matrix B: B[s][t] = 1 if bank
// state s is among the candidates registered for chord t, else 0. Its
// shape always matches the bank's current size, growing as AddChord is
// called; there is no separate append-in-place step.
func (b *Bank) Emission() [][]float64 {
	em := make([][]float64, len(b.states))
	for s := range em {
		em[s] = make([]float64, len(b.columns))
	}
	for t, col := range b.columns {
		for _, s := range col {
			em[s][t] = 1
		}
	}
	return em
}
