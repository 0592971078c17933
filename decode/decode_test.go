package decode

import (
	"context"
	"errors"
	"testing"

	"fretpath/fingering"
)

func TestDecodeEmptySequenceReturnsEmptyNotError(t *testing.T) {
	g := testGraph(t)
	result, err := Decode(context.Background(), g, nil, nil)
	if err != nil {
		t.Fatalf("Decode(empty) returned error: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("Decode(empty) = %v, want empty", result)
	}
}

func TestDecodeSingleOpenENote(t *testing.T) {
	g := testGraph(t)
	chords := []fingering.Chord{chordOf(t, "E2")}

	result, err := Decode(context.Background(), g, chords, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("Decode returned %d fingerings, want 1", len(result))
	}
	got := result[0]
	if len(got.Positions) != 1 || got.Positions[0].String != 0 || got.Positions[0].Fret != 0 {
		t.Errorf("expected the open low-E string, got %+v", got)
	}
}

func TestDecodeCMajorSingleChordSelectsPlayableVoicing(t *testing.T) {
	g := testGraph(t)
	chords := []fingering.Chord{chordOf(t, "C3", "E3", "G3", "C4", "E4")}

	result, err := Decode(context.Background(), g, chords, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("Decode returned %d fingerings, want 1", len(result))
	}

	f := result[0]
	minFret, maxFret, any := 0, 0, false
	for _, p := range f.Positions {
		if p.Fret == 0 {
			continue
		}
		if !any || p.Fret < minFret {
			minFret = p.Fret
		}
		if !any || p.Fret > maxFret {
			maxFret = p.Fret
		}
		any = true
	}
	if any && maxFret-minFret >= 5 {
		t.Errorf("decoded fingering fret span %d exceeds the playable limit", maxFret-minFret)
	}
}

func TestDecodeTwoChordSequenceSharesString(t *testing.T) {
	g := testGraph(t)
	eMajor := chordOf(t, "E2", "B2", "E3", "G#3", "B3", "E4")
	aMajor := chordOf(t, "A2", "E3", "A3", "C#4", "E4")

	result, err := Decode(context.Background(), g, []fingering.Chord{eMajor, aMajor}, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Decode returned %d fingerings, want 2", len(result))
	}

	shared := false
	for s := range result[0].Strings() {
		if _, ok := result[1].Strings()[s]; ok {
			shared = true
			break
		}
	}
	if !shared {
		t.Errorf("expected the two decoded voicings to share at least one string, got %+v and %+v", result[0], result[1])
	}
}

func TestDecodeUnreachableNoteReturnsNoFingeringError(t *testing.T) {
	g := testGraph(t)
	chords := []fingering.Chord{chordOf(t, "E2", "E6")}

	_, err := Decode(context.Background(), g, chords, nil)
	if err == nil {
		t.Fatalf("expected NoFingeringError")
	}
	var nfErr *fingering.NoFingeringError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected *fingering.NoFingeringError, got %T: %v", err, err)
	}
	if nfErr.ChordIndex != 0 {
		t.Errorf("ChordIndex = %d, want 0", nfErr.ChordIndex)
	}
	if len(nfErr.Unplaced) != 1 || nfErr.Unplaced[0] != mustNote(t, "E6") {
		t.Errorf("Unplaced = %v, want [E6]", nfErr.Unplaced)
	}
}

func TestDecodeRespectsCancellation(t *testing.T) {
	g := testGraph(t)
	chords := []fingering.Chord{chordOf(t, "C3", "E3", "G3")}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Decode(ctx, g, chords, nil)
	if err == nil {
		t.Fatalf("expected cancellation error")
	}
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("expected ErrCancelled, got %v", err)
	}
}

func TestDecodeIdenticalConsecutiveChordsPreferStability(t *testing.T) {
	g := testGraph(t)
	// C major has many candidate fingerings (open-position, barre shapes
	// up the neck, ...), so this actually exercises the dh=0/cs=0
	// stability preference rather than a single forced voicing.
	chord := chordOf(t, "C3", "E3", "G3", "C4", "E4")
	result, err := Decode(context.Background(), g, []fingering.Chord{chord, chord, chord}, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("Decode returned %d fingerings, want 3", len(result))
	}
	want := result[0].Key()
	for i := 1; i < len(result); i++ {
		if result[i].Key() != want {
			t.Errorf("step %d picked a different fingering's position set than step 0 for an identical chord: %+v vs %+v", i, result[i], result[0])
		}
	}
}
