// Package display renders a decoded Fingering sequence for a human to read:
// ASCII tablature, a fretboard box diagram, and an interactive stepper.
package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fretpath/fingering"
)

var (
	tabHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF")).
			Bold(true)

	tabStringStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	tabFretStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))
)

// Tablature renders sequence as a multi-column ASCII tab, one column per
// Fingering and one row per string, highest-pitched string on top.
func Tablature(sequence []fingering.Fingering, nStrings int) string {
	var b strings.Builder
	b.WriteString(tabHeaderStyle.Render(fmt.Sprintf("  Tablature (%d chords)", len(sequence))))
	b.WriteString("\n")

	cells := make([][]string, nStrings)
	for s := range cells {
		cells[s] = make([]string, len(sequence))
		for i := range cells[s] {
			cells[s][i] = "-"
		}
	}

	width := 1
	for _, f := range sequence {
		for _, p := range f.Positions {
			if p.String < 0 || p.String >= nStrings {
				continue
			}
			if w := len(fmt.Sprintf("%d", p.Fret)); w > width {
				width = w
			}
		}
	}

	for i, f := range sequence {
		for _, p := range f.Positions {
			if p.String < 0 || p.String >= nStrings {
				continue
			}
			cells[p.String][i] = fmt.Sprintf("%d", p.Fret)
		}
	}

	for displayRow := 0; displayRow < nStrings; displayRow++ {
		stringIdx := nStrings - 1 - displayRow
		line := tabStringStyle.Render(fmt.Sprintf("%2d|", stringIdx))
		for i := range sequence {
			line += tabFretStyle.Render(fmt.Sprintf("%-*s", width+1, cells[stringIdx][i])) + "|"
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// fretRange returns the fretted (non-open) span a Fingering occupies,
// widened upward to at least four frets (high = low+3), or [0,3] if the
// Fingering has no fretted notes.
func fretRange(f fingering.Fingering) (low, high int) {
	frets := make([]int, 0, len(f.Positions))
	for _, p := range f.Positions {
		if p.Fret > 0 {
			frets = append(frets, p.Fret)
		}
	}
	if len(frets) == 0 {
		return 0, 3
	}
	sort.Ints(frets)
	low, high = frets[0], frets[len(frets)-1]
	if high-low < 3 {
		high = low + 3
	}
	return low, high
}
