package sheet

import "testing"

const sampleYAML = `
tuning: standard
frets: 15
scale_length: 648
chords:
  - [E2, B2, E3, "G#3", B3, E4]
  - [A2, E3, A3, "D4", E4]
`

func TestParseBasicSheet(t *testing.T) {
	s, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Tuning.Name != "standard" {
		t.Errorf("Tuning.Name = %q, want %q", s.Tuning.Name, "standard")
	}
	if s.Frets != 15 {
		t.Errorf("Frets = %d, want 15", s.Frets)
	}
	if s.ScaleLength != 648 {
		t.Errorf("ScaleLength = %v, want 648", s.ScaleLength)
	}
	if len(s.ChordList) != 2 {
		t.Fatalf("ChordList has %d entries, want 2", len(s.ChordList))
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	s, err := Parse([]byte("tuning: standard\nchords: []\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Frets == 0 {
		t.Errorf("Frets default not applied")
	}
	if s.ScaleLength == 0 {
		t.Errorf("ScaleLength default not applied")
	}
}

func TestParseExplicitTuningNotes(t *testing.T) {
	s, err := Parse([]byte("tuning: [D2, A2, D3, G3, B3, E4]\nchords: []\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(s.Tuning.Notes) != 6 {
		t.Fatalf("Tuning.Notes has %d entries, want 6", len(s.Tuning.Notes))
	}
	tuning, err := s.Tuning.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(tuning.Strings) != 6 {
		t.Fatalf("resolved tuning has %d strings, want 6", len(tuning.Strings))
	}
}

func TestSheetGraphAndChords(t *testing.T) {
	s, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, err := s.Graph()
	if err != nil {
		t.Fatalf("Graph: %v", err)
	}
	if g.NFrets != 15 {
		t.Errorf("Graph NFrets = %d, want 15", g.NFrets)
	}

	chords, err := s.Chords()
	if err != nil {
		t.Fatalf("Chords: %v", err)
	}
	if len(chords) != 2 {
		t.Fatalf("Chords() has %d entries, want 2", len(chords))
	}
	if len(chords[0].Notes) != 6 {
		t.Errorf("first chord has %d notes, want 6", len(chords[0].Notes))
	}
}

func TestParseRejectsUnknownTuningName(t *testing.T) {
	s, err := Parse([]byte("tuning: not_a_real_tuning\nchords: []\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := s.Graph(); err == nil {
		t.Fatalf("expected error building graph from an unknown tuning name")
	}
}
