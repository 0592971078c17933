package decode

import (
	"context"
	"testing"
)

func TestViterbiPrefersStrongSelfLoop(t *testing.T) {
	a := [][]float64{
		{0.9, 0.1},
		{0.1, 0.9},
	}
	em := [][]float64{
		{1, 1, 1},
		{1, 1, 1},
	}
	initial := []float64{0.5, 0.5}

	path, err := viterbi(context.Background(), a, em, initial)
	if err != nil {
		t.Fatalf("viterbi: %v", err)
	}
	want := []int{0, 0, 0}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v (ties should break toward the smaller state index)", path, want)
		}
	}
}

func TestViterbiFollowsDominantInitialState(t *testing.T) {
	a := [][]float64{
		{0.9, 0.1},
		{0.1, 0.9},
	}
	em := [][]float64{
		{1, 1, 1},
		{1, 1, 1},
	}
	initial := []float64{0.9, 0.1}

	path, err := viterbi(context.Background(), a, em, initial)
	if err != nil {
		t.Fatalf("viterbi: %v", err)
	}
	for i, s := range path {
		if s != 0 {
			t.Errorf("path[%d] = %d, want 0 (dominant initial state should win throughout)", i, s)
		}
	}
}

func TestViterbiRespectsEmissionMask(t *testing.T) {
	// State 0 is only valid at t=0; state 1 only at t=1 and t=2. Even
	// with a strong self-loop bias, the decoder must switch to state 1
	// once state 0 becomes impossible.
	a := [][]float64{
		{0.9, 0.1},
		{0.1, 0.9},
	}
	em := [][]float64{
		{1, 0, 0},
		{0, 1, 1},
	}
	initial := []float64{0.5, 0.5}

	path, err := viterbi(context.Background(), a, em, initial)
	if err != nil {
		t.Fatalf("viterbi: %v", err)
	}
	want := []int{0, 1, 1}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
}

func TestViterbiRespectsCancellation(t *testing.T) {
	a := [][]float64{{1}}
	em := make([][]float64, 1)
	em[0] = make([]float64, 100)
	for i := range em[0] {
		em[0][i] = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := viterbi(ctx, a, em, []float64{1}); err == nil {
		t.Fatalf("expected cancellation error")
	}
}
