package decode

import (
	"context"

	"fretpath/fingering"
	"fretpath/fretboard"
	"fretpath/internal/workpool"
)

// buildTransition builds the row-normalized transition matrix A over every
// pair of states currently in bank: A[i][j] is proportional to the ease of
// playing state j immediately after state i, normalized so each row sums
// to 1. Self-transitions (i == j) are included in that normalization, not
// excluded from it.
//
// Rows are independent of each other, so they are computed in parallel
// across a worker pool, sized for the whole bank regardless of which pairs
// any single time step will actually look up — the bank is expected to
// stay small enough (the candidates of every chord in the sequence) for this to be
// cheap relative to enumeration.
func buildTransition(ctx context.Context, g *fretboard.Graph, bank *Bank) ([][]float64, error) {
	n := bank.NumStates()
	a := make([][]float64, n)

	pool := workpool.New()
	defer pool.Close()

	err := workpool.Run(ctx, pool, n, func(i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		previous := bank.State(i)
		row := make([]float64, n)
		sum := 0.0
		for j := 0; j < n; j++ {
			current := bank.State(j)
			weight := 1 / fingering.Difficulty(g, current, previous)
			row[j] = weight
			sum += weight
		}
		for j := range row {
			row[j] /= sum
		}
		a[i] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}
