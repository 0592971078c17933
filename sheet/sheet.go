// Package sheet loads a chord sheet from YAML: the instrument's tuning and
// fret count, and the ordered sequence of chords to decode fingerings for.
package sheet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fretpath/fingering"
	"fretpath/fretboard"
	"fretpath/theory"
)

// Sheet is the parsed contents of a chord-sheet file.
type Sheet struct {
	Tuning      TuningField  `yaml:"tuning"`
	Frets       int          `yaml:"frets"`
	ScaleLength float64      `yaml:"scale_length"`
	ChordList   []ChordNotes `yaml:"chords"`
}

// ChordNotes is one chord's required pitches, written as a YAML list of
// note names such as ["E2", "B2", "E3", "G#3", "B3", "E4"].
type ChordNotes []string

// TuningField accepts either a named tuning ("standard", "drop_d", ...) or
// an explicit list of open-string note names, lowest string first — the
// same string-or-list flexibility a chord sheet author expects from a
// tuning field.
type TuningField struct {
	Name   string
	Notes  []string
	Source string
}

// UnmarshalYAML implements the string-or-list union.
func (f *TuningField) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err == nil {
		f.Name = name
		return nil
	}
	var notes []string
	if err := node.Decode(&notes); err != nil {
		return fmt.Errorf("sheet: tuning must be a name or a list of note names: %w", err)
	}
	f.Notes = notes
	return nil
}

// Resolve turns the TuningField into a theory.Tuning: a named lookup if
// Name is set, an explicit tuning built from Notes if Notes is non-empty,
// or standard tuning when neither is given.
func (f TuningField) Resolve() (theory.Tuning, error) {
	if f.Name != "" {
		return theory.ParseTuning(f.Name)
	}
	if len(f.Notes) == 0 {
		return theory.StandardTuning(), nil
	}
	notes := make([]theory.Note, len(f.Notes))
	for i, n := range f.Notes {
		note, err := theory.ParseNote(n)
		if err != nil {
			return theory.Tuning{}, fmt.Errorf("sheet: tuning string %d: %w", i, err)
		}
		notes[i] = note
	}
	return theory.NewTuning(notes...), nil
}

// Load reads and parses a chord sheet from path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses chord-sheet YAML from data, applying defaults for any
// field the author left unset.
func Parse(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sheet: parsing YAML: %w", err)
	}
	if s.Frets == 0 {
		s.Frets = fretboard.DefaultFrets
	}
	if s.ScaleLength == 0 {
		s.ScaleLength = fretboard.DefaultScaleLength
	}
	return &s, nil
}

// Graph builds the fretboard Graph described by the sheet's tuning, fret
// count, and scale length.
func (s *Sheet) Graph() (*fretboard.Graph, error) {
	tuning, err := s.Tuning.Resolve()
	if err != nil {
		return nil, err
	}
	return fretboard.Build(tuning, s.Frets, s.ScaleLength)
}

// Chords converts the sheet's chord list into fingering.Chords, in order.
func (s *Sheet) Chords() ([]fingering.Chord, error) {
	chords := make([]fingering.Chord, len(s.ChordList))
	for i, names := range s.ChordList {
		notes := make([]theory.Note, len(names))
		for j, n := range names {
			note, err := theory.ParseNote(n)
			if err != nil {
				return nil, fmt.Errorf("sheet: chord %d note %d: %w", i, j, err)
			}
			notes[j] = note
		}
		chords[i] = fingering.Chord{Notes: notes}
	}
	return chords, nil
}
