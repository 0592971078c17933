package display

import (
	"fmt"

	"fretpath/fingering"
	"fretpath/fretboard"
)

// FretboardDiagram renders a single Fingering as a box-drawing fretboard
// diagram spanning the frets the Fingering uses (at least four frets; see
// fretRange), with open
// strings marked O and unplayed strings marked X. Strings are shown
// highest-pitched on top, matching the teacher's display convention.
func FretboardDiagram(f fingering.Fingering, g *fretboard.Graph) []string {
	nStrings := g.NStrings()
	byString := make(map[int]fretboard.Position, len(f.Positions))
	for _, p := range f.Positions {
		byString[p.String] = p
	}

	lowFret, highFret := fretRange(f)

	var lines []string

	header := "   "
	for fret := lowFret; fret <= highFret; fret++ {
		header += fmt.Sprintf("%2d ", fret)
	}
	lines = append(lines, header)

	top := "   ╔"
	for fret := lowFret; fret <= highFret; fret++ {
		if fret == highFret {
			top += "══╗"
		} else {
			top += "══╤"
		}
	}
	lines = append(lines, top)

	for displayRow := 0; displayRow < nStrings; displayRow++ {
		stringIdx := nStrings - 1 - displayRow
		p, played := byString[stringIdx]

		prefix := " X ║"
		if played {
			if p.Fret == 0 {
				prefix = " O ║"
			} else {
				prefix = "   ║"
			}
		}
		line := prefix

		for fret := lowFret; fret <= highFret; fret++ {
			symbol := "──"
			if played && p.Fret == fret && fret != 0 {
				symbol = "●─"
			}
			line += symbol
			if fret < highFret {
				line += "│"
			} else {
				line += "║"
			}
		}
		lines = append(lines, line)
	}

	bottom := "   ╚"
	for fret := lowFret; fret <= highFret; fret++ {
		if fret == highFret {
			bottom += "══╝"
		} else {
			bottom += "══╧"
		}
	}
	lines = append(lines, bottom)

	lines = append(lines, "")
	lines = append(lines, " O open  X muted  ● fretted")

	return lines
}
