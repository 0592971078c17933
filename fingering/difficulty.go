package fingering

import (
	"math"

	"fretpath/fretboard"
)

// laplaceB and laplaceMu are the fixed Laplace distribution parameters;
// they must not be tuned per call.
const (
	laplaceB  = 1.0
	laplaceMu = 0.0
)

// Height is the average of the highest and lowest non-open fret index in
// f; 0 if f is entirely open strings.
func Height(f Fingering) float64 {
	min, max, any := 0, 0, false
	for _, p := range f.Positions {
		if p.Fret == 0 {
			continue
		}
		if !any || p.Fret < min {
			min = p.Fret
		}
		if !any || p.Fret > max {
			max = p.Fret
		}
		any = true
	}
	if !any {
		return 0
	}
	return float64(min+max) / 2
}

// heightWithFallback is Height(current), except that when current has no
// non-open positions and previous is non-empty, it reuses previous's
// height.
func heightWithFallback(current, previous Fingering) float64 {
	hasFretted := false
	for _, p := range current.Positions {
		if p.Fret != 0 {
			hasFretted = true
			break
		}
	}
	if !hasFretted && !previous.Empty() {
		return Height(previous)
	}
	return Height(current)
}

// PathLength is the sum of pairwise fretboard distances along f's positions
// taken in f's own (enumeration) order — not a symmetric chord-wide
// metric, by design: two fingerings with the same positions in different
// orders can have different path lengths.
func PathLength(g *fretboard.Graph, f Fingering) float64 {
	total := 0.0
	for i := 1; i < len(f.Positions); i++ {
		total += g.Distance(f.Positions[i-1], f.Positions[i])
	}
	return total
}

// FingerCount is the number of non-open positions in f.
func FingerCount(f Fingering) int {
	count := 0
	for _, p := range f.Positions {
		if p.Fret != 0 {
			count++
		}
	}
	return count
}

// ChangedStrings is |current strings| - |current strings ∩ previous
// strings|; 0 when previous is empty.
func ChangedStrings(current, previous Fingering) int {
	if previous.Empty() {
		return 0
	}
	currentStrings := current.Strings()
	previousStrings := previous.Strings()
	overlap := 0
	for s := range currentStrings {
		if _, ok := previousStrings[s]; ok {
			overlap++
		}
	}
	return len(currentStrings) - overlap
}

// laplace is the Laplace-distribution density laplace(x; b, mu).
func laplace(x, b, mu float64) float64 {
	return (1 / (2 * b)) * math.Exp(-math.Abs(x-mu)/b)
}

// Difficulty scores how hard it is to play current immediately after
// previous. previous may be the zero Fingering, meaning "sequence start"
// (dh = 0, cs = 0).
func Difficulty(g *fretboard.Graph, current, previous Fingering) float64 {
	h := heightWithFallback(current, previous)

	var dh float64
	if !previous.Empty() {
		dh = math.Abs(h - Height(previous))
	}

	length := PathLength(g, current)
	nf := FingerCount(current)
	cs := ChangedStrings(current, previous)

	easiness := laplace(dh, laplaceB, laplaceMu) *
		1 / (1 + h) *
		1 / (1 + float64(nf)) *
		1 / (1 + length) *
		1 / (1 + float64(cs))

	return 1 / easiness
}
