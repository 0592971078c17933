package decode

import (
	"context"
	"math"
)

// viterbi runs log-space Viterbi decoding over T time steps and n states,
// given a row-normalized transition matrix a (n x n), an emission matrix em
// (n x T, typically the bank's indicator matrix), and an initial state
// distribution of length n. It returns the most likely state index at each
// time step. Ties in the argmax are broken toward the smaller state index.
func viterbi(ctx context.Context, a, em [][]float64, initial []float64) ([]int, error) {
	n := len(em)
	if n == 0 {
		return nil, nil
	}
	t := len(em[0])
	if t == 0 {
		return nil, nil
	}

	omega := make([][]float64, t)
	prev := make([][]int, t)
	for step := range omega {
		omega[step] = make([]float64, n)
		prev[step] = make([]int, n)
	}

	for j := 0; j < n; j++ {
		omega[0][j] = logOf(initial[j]) + logOf(em[j][0])
	}

	for step := 1; step < t; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := 0; j < n; j++ {
			bestScore := math.Inf(-1)
			bestI := 0
			for i := 0; i < n; i++ {
				score := omega[step-1][i] + logOf(a[i][j])
				if score > bestScore {
					bestScore = score
					bestI = i
				}
			}
			omega[step][j] = bestScore + logOf(em[j][step])
			prev[step][j] = bestI
		}
	}

	lastBest := 0
	lastScore := math.Inf(-1)
	for j := 0; j < n; j++ {
		if omega[t-1][j] > lastScore {
			lastScore = omega[t-1][j]
			lastBest = j
		}
	}

	path := make([]int, t)
	path[t-1] = lastBest
	for step := t - 1; step > 0; step-- {
		path[step-1] = prev[step][path[step]]
	}
	return path, nil
}

func logOf(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return math.Log(x)
}
