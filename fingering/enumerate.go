package fingering

import (
	"context"

	"fretpath/fretboard"
)

// maxFretSpan is the strict fret-span bound:
// max(fret) - min(fret), over non-open positions, must be < maxFretSpan.
const maxFretSpan = 5

// maxCandidateDistance is the strict pairwise-distance bound applied
// during layered-graph edge construction.
const maxCandidateDistance = 6.0

// Enumerate produces every playable Fingering for chord on g. The result
// is deduplicated by position set; order is unspecified. A chord with an
// unreachable note yields an empty, non-error result — the caller
// (typically decode.Decode) is responsible for turning "zero candidates
// for this chord" into a NoFingering error.
func Enumerate(ctx context.Context, g *fretboard.Graph, chord Chord) ([]Fingering, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidates := make([][]fretboard.Position, len(chord.Notes))
	for i, n := range chord.Notes {
		candidates[i] = g.PositionsForNote(n)
		if len(candidates[i]) == 0 {
			return nil, nil
		}
	}

	if len(candidates) == 1 {
		fingerings := make([]Fingering, len(candidates[0]))
		for i, p := range candidates[0] {
			fingerings[i] = Fingering{Positions: []fretboard.Position{p}}
		}
		return fingerings, nil
	}

	seen := make(map[string]struct{})
	var results []Fingering

	for _, perm := range permutations(candidates) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, path := range simplePaths(g, perm) {
			fng := Fingering{Positions: path}
			if !isPlayable(fng, len(chord.Notes)) {
				continue
			}
			k := fng.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			results = append(results, fng)
		}
	}

	return results, nil
}

// permutations returns every ordering of the given layers.
func permutations(layers [][]fretboard.Position) [][][]fretboard.Position {
	if len(layers) == 0 {
		return nil
	}
	indices := make([]int, len(layers))
	for i := range indices {
		indices[i] = i
	}

	var out [][][]fretboard.Position
	var permute func(remaining []int, acc []int)
	permute = func(remaining []int, acc []int) {
		if len(remaining) == 0 {
			ordered := make([][]fretboard.Position, len(acc))
			for i, idx := range acc {
				ordered[i] = layers[idx]
			}
			out = append(out, ordered)
			return
		}
		for i, idx := range remaining {
			rest := make([]int, 0, len(remaining)-1)
			rest = append(rest, remaining[:i]...)
			rest = append(rest, remaining[i+1:]...)
			permute(rest, append(acc, idx))
		}
	}
	permute(indices, nil)
	return out
}

// simplePaths enumerates every simple path through the layered directed
// graph built from layers: an edge from layer i to layer i+1 exists iff
// the two positions are on different strings and, when both positions are
// fretted, their physical distance is strictly less than
// maxCandidateDistance. An edge where either endpoint is an open string is
// exempt from the distance check entirely — open strings require no hand
// position, so they never constrain reach.
func simplePaths(g *fretboard.Graph, layers [][]fretboard.Position) [][]fretboard.Position {
	if len(layers) == 0 {
		return nil
	}

	var paths [][]fretboard.Position
	var walk func(depth int, path []fretboard.Position)
	walk = func(depth int, path []fretboard.Position) {
		if depth == len(layers) {
			done := make([]fretboard.Position, len(path))
			copy(done, path)
			paths = append(paths, done)
			return
		}
		for _, candidate := range layers[depth] {
			if depth > 0 {
				prev := path[depth-1]
				if prev.String == candidate.String {
					continue
				}
				if prev.Fret != 0 && candidate.Fret != 0 && g.Distance(prev, candidate) >= maxCandidateDistance {
					continue
				}
			}
			walk(depth+1, append(path, candidate))
		}
	}
	walk(0, make([]fretboard.Position, 0, len(layers)))
	return paths
}

// isPlayable checks the remaining constraints not already
// enforced by edge construction: one position per string across the whole
// fingering, fret span, and fingering length.
func isPlayable(f Fingering, wantLen int) bool {
	if len(f.Positions) != wantLen {
		return false
	}

	usedStrings := make(map[int]struct{}, len(f.Positions))
	minFret, maxFret := -1, -1
	for _, p := range f.Positions {
		if _, dup := usedStrings[p.String]; dup {
			return false
		}
		usedStrings[p.String] = struct{}{}

		if p.Fret == 0 {
			continue
		}
		if minFret == -1 || p.Fret < minFret {
			minFret = p.Fret
		}
		if maxFret == -1 || p.Fret > maxFret {
			maxFret = p.Fret
		}
	}
	if minFret != -1 && maxFret-minFret >= maxFretSpan {
		return false
	}
	return true
}
