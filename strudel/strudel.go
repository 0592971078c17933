// Package strudel renders a decoded Fingering sequence as a Strudel
// (strudel.cc) pattern string: a single note layer, since this engine has
// no bass, drum, or rhythm tracks of its own to stack alongside it.
package strudel

import (
	"fmt"
	"strings"

	"fretpath/fingering"
	"fretpath/theory"
)

// defaultSound is the Strudel sample/synth name used for the single note
// layer Export emits.
const defaultSound = "piano"

// Export converts fingerings into a Strudel pattern string. Each Fingering
// becomes one bracketed chord step; empty Fingerings (silence) become "~".
// tempo is in beats per minute and is emitted as .cpm(tempo/4), i.e. four
// beats per Strudel cycle; a non-positive tempo omits the .cpm() call
// entirely.
func Export(fingerings []fingering.Fingering, tempo int) string {
	steps := make([]string, len(fingerings))
	for i, f := range fingerings {
		steps[i] = chordStep(f)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("note(\"%s\").s(%q)", strings.Join(steps, " "), defaultSound))
	if tempo > 0 {
		sb.WriteString(fmt.Sprintf(".cpm(%d/4)", tempo))
	}
	return sb.String()
}

func chordStep(f fingering.Fingering) string {
	if len(f.Positions) == 0 {
		return "~"
	}
	notes := make([]string, len(f.Positions))
	for i, p := range f.Positions {
		notes[i] = strudelNote(p.Note)
	}
	return fmt.Sprintf("[%s]", strings.Join(notes, ","))
}

// strudelNote renders a theory.Note in Strudel's lowercase note-name form,
// e.g. C#4 becomes "cs4".
func strudelNote(n theory.Note) string {
	name := strings.ToLower(n.Degree.String())
	name = strings.ReplaceAll(name, "#", "s")
	return fmt.Sprintf("%s%d", name, n.Octave)
}
