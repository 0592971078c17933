package display

import (
	"fmt"
	"strings"

	"fretpath/fingering"
	"fretpath/fretboard"
)

// ShowSummary prints a boxed header summarizing a decoded Fingering
// sequence: chord count, string count, and a per-chord grid of which
// frets are used.
func ShowSummary(g *fretboard.Graph, sequence []fingering.Fingering) {
	title := fmt.Sprintf("%d chords", len(sequence))
	info := fmt.Sprintf("Strings: %d | Frets: 0-%d", g.NStrings(), g.NFrets)

	maxLen := len(title)
	if len(info) > maxLen {
		maxLen = len(info)
	}

	fmt.Printf("┌─ %s %s┐\n", title, strings.Repeat("─", maxLen-len(title)+1))
	fmt.Printf("│ %s%s │\n", info, strings.Repeat(" ", maxLen-len(info)))
	fmt.Printf("└%s┘\n\n", strings.Repeat("─", maxLen+2))

	chordsPerLine := 4
	for i := 0; i < len(sequence); i += chordsPerLine {
		end := i + chordsPerLine
		if end > len(sequence) {
			end = len(sequence)
		}

		line := make([]string, 0, chordsPerLine)
		for j := i; j < end; j++ {
			line = append(line, describeFingering(sequence[j]))
		}
		fmt.Printf("  %s\n", strings.Join(line, " | "))
	}

	if len(sequence) > 1 {
		total := 0.0
		for i := 1; i < len(sequence); i++ {
			total += fingering.Difficulty(g, sequence[i], sequence[i-1])
		}
		fmt.Printf("\nTotal transition difficulty: %.2f (avg %.2f/transition)\n", total, total/float64(len(sequence)-1))
	}
}

func describeFingering(f fingering.Fingering) string {
	if len(f.Positions) == 0 {
		return "(none)"
	}
	parts := make([]string, len(f.Positions))
	for i, p := range f.Positions {
		parts[i] = fmt.Sprintf("%d:%d", p.String, p.Fret)
	}
	return strings.Join(parts, ",")
}
