// Package statusbar renders the bottom help/status line of the board.
package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/scriptloft/beatboard/pkg/tui/theme"
)

// Mode describes what the board is currently doing, shown left of the help.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeDragging
	ModeMovePicker
)

func (m Mode) label() string {
	switch m {
	case ModeDragging:
		return "DRAG"
	case ModeMovePicker:
		return "MOVE"
	default:
		return ""
	}
}

// Model tracks footer rendering state.
type Model struct {
	theme  theme.Theme
	width  int
	mode   Mode
	help   string
	status string
}

// New returns a footer model with the browse-mode help line.
func New(t theme.Theme) Model {
	return Model{
		theme: t,
		help:  "←/→ column · ↑/↓ scene · enter open · m move · r refresh · c clear context · q quit",
	}
}

// SetWidth updates the render width.
func (m *Model) SetWidth(width int) { m.width = width }

// SetMode updates the visual mode.
func (m *Model) SetMode(mode Mode) {
	m.mode = mode
	switch mode {
	case ModeDragging:
		m.help = "release over a column to move · esc cancels"
	case ModeMovePicker:
		m.help = "select destination and press enter · esc cancels"
	default:
		m.help = "←/→ column · ↑/↓ scene · enter open · m move · r refresh · c clear context · q quit"
	}
}

// SetStatus sets the status message to display.
func (m *Model) SetStatus(status string) { m.status = status }

// View renders the single footer line.
func (m Model) View() string {
	parts := make([]string, 0, 3)
	if label := m.mode.label(); label != "" {
		parts = append(parts, m.theme.Footer.Mode.Render(label))
	}
	parts = append(parts, m.theme.Footer.Help.Render(m.help))
	if m.status != "" {
		parts = append(parts, m.theme.Footer.Status.Render(m.status))
	}
	line := strings.Join(parts, "  ")
	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}
