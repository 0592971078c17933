package display

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fretpath/fingering"
	"fretpath/fretboard"
)

var (
	dimColor = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	headerStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)

// WatchModel is a Bubbletea model for stepping through a decoded Fingering
// sequence one chord at a time.
type WatchModel struct {
	graph    *fretboard.Graph
	sequence []fingering.Fingering
	index    int
	quitting bool
}

// NewWatchModel creates a WatchModel positioned at the first chord.
func NewWatchModel(g *fretboard.Graph, sequence []fingering.Fingering) *WatchModel {
	return &WatchModel{graph: g, sequence: sequence}
}

// Init starts the model with no initial command.
func (m *WatchModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses: left/right step through the sequence,
// q/ctrl+c/esc quits.
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			if m.index > 0 {
				m.index--
			}
		case "right", "l", " ":
			if m.index < len(m.sequence)-1 {
				m.index++
			}
		case "home":
			m.index = 0
		case "end":
			m.index = len(m.sequence) - 1
		}
	}
	return m, nil
}

// View renders the current chord's fretboard diagram and a progress line.
func (m *WatchModel) View() string {
	if m.quitting || len(m.sequence) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Chord %d / %d", m.index+1, len(m.sequence))))
	b.WriteString("\n\n")

	f := m.sequence[m.index]
	for _, line := range FretboardDiagram(f, m.graph) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.index > 0 {
		prev := m.sequence[m.index-1]
		d := fingering.Difficulty(m.graph, f, prev)
		b.WriteString(headerStyle.Render(fmt.Sprintf("\ntransition difficulty: %.2f", d)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("[←/→] step through chords  [q] quit"))
	return b.String()
}

// CurrentIndex returns the chord currently displayed.
func (m *WatchModel) CurrentIndex() int {
	return m.index
}
