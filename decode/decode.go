// Package decode selects a complete sequence of Fingerings for a sequence
// of Chords, minimizing total difficulty across transitions rather than
// choosing each chord's easiest fingering in isolation. It decodes via
// log-space Viterbi over every candidate fingering discovered across the
// sequence (the "bank"), with a row-normalized transition matrix scored by
// fingering.Difficulty and an indicator emission matrix recording which
// fingerings are valid at which time step.
package decode

import (
	"context"

	"fretpath/fingering"
	"fretpath/fretboard"
	"fretpath/internal/workpool"
	"fretpath/theory"
)

// Decode returns the most playable Fingering for each chord in chords, in
// order. prior is the initial-state distribution over the eventual bank of
// candidate fingerings; pass nil for a uniform prior.
//
// An empty chords slice returns (nil, nil): the empty sequence is not an
// error. A chord with zero candidate fingerings at all (every reachable
// note placement still fails the Candidate Enumerator's playability rules)
// returns a *fingering.NoFingeringError identifying the chord and any
// individual notes that could not be placed on the fretboard at all.
// Cancelling ctx returns ErrCancelled and no partial result.
func Decode(ctx context.Context, g *fretboard.Graph, chords []fingering.Chord, prior []float64) ([]fingering.Fingering, error) {
	if len(chords) == 0 {
		return nil, nil
	}

	candidates := make([][]fingering.Fingering, len(chords))
	pool := workpool.New()
	err := workpool.Run(ctx, pool, len(chords), func(i int) error {
		found, err := fingering.Enumerate(ctx, g, chords[i])
		if err != nil {
			return err
		}
		candidates[i] = found
		return nil
	})
	pool.Close()
	if err != nil {
		return nil, wrapCancellation(err)
	}

	for i, found := range candidates {
		if len(found) == 0 {
			return nil, &fingering.NoFingeringError{
				ChordIndex: i,
				Unplaced:   unplacedNotes(g, chords[i]),
			}
		}
	}

	bank := NewBank()
	for _, found := range candidates {
		bank.AddChord(found)
	}

	a, err := buildTransition(ctx, g, bank)
	if err != nil {
		return nil, wrapCancellation(err)
	}

	initial := prior
	if initial == nil {
		initial = uniform(bank.NumStates())
	}

	path, err := viterbi(ctx, a, bank.Emission(), initial)
	if err != nil {
		return nil, wrapCancellation(err)
	}

	result := make([]fingering.Fingering, len(path))
	for t, stateIdx := range path {
		result[t] = bank.State(stateIdx)
	}
	return result, nil
}

func uniform(n int) []float64 {
	if n == 0 {
		return nil
	}
	p := make([]float64, n)
	v := 1.0 / float64(n)
	for i := range p {
		p[i] = v
	}
	return p
}

func unplacedNotes(g *fretboard.Graph, chord fingering.Chord) []theory.Note {
	var unplaced []theory.Note
	for _, n := range chord.Notes {
		if len(g.PositionsForNote(n)) == 0 {
			unplaced = append(unplaced, n)
		}
	}
	return unplaced
}
