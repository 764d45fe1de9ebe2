// Package theme centralizes Lip Gloss styles for the board UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/scriptloft/beatboard/pkg/board/viewmodel"
	"github.com/scriptloft/beatboard/pkg/screenplay"
)

// Theme groups the styles used across the board components.
type Theme struct {
	Column ColumnTheme
	Card   CardTheme
	Toast  ToastTheme
	Footer FooterTheme
}

// ColumnTheme styles one beat column frame and header.
type ColumnTheme struct {
	Frame          lipgloss.Style
	FrameFocused   lipgloss.Style
	FrameHovered   lipgloss.Style
	FrameHighlight lipgloss.Style
	Title          lipgloss.Style
	Count          lipgloss.Style
	Empty          lipgloss.Style
}

// CardTheme styles scene cards within a column.
type CardTheme struct {
	Base        lipgloss.Style
	Selected    lipgloss.Style
	Highlighted lipgloss.Style
	Dragged     lipgloss.Style
	Heading     lipgloss.Style
	Synopsis    lipgloss.Style
	StatusDraft lipgloss.Style
	StatusRev   lipgloss.Style
	StatusFinal lipgloss.Style
}

// ToastTheme styles the transient notification stack.
type ToastTheme struct {
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Mode   lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Column: ColumnTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("241")).
				Padding(0, 1),
			FrameFocused: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("252")).
				Padding(0, 1),
			FrameHovered: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(0, 1),
			FrameHighlight: lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Count: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Card: CardTheme{
			Base:        lipgloss.NewStyle(),
			Selected:    lipgloss.NewStyle().Reverse(true),
			Highlighted: lipgloss.NewStyle().Bold(true),
			Dragged:     lipgloss.NewStyle().Faint(true),
			Heading:     lipgloss.NewStyle(),
			Synopsis:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			StatusDraft: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			StatusRev:   lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
			StatusFinal: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		},
		Toast: ToastTheme{
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Mode:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
	}
}

// StatusStyle returns the card status style for the given scene status.
func (t Theme) StatusStyle(s screenplay.Status) lipgloss.Style {
	switch s {
	case screenplay.StatusReview:
		return t.Card.StatusRev
	case screenplay.StatusFinal:
		return t.Card.StatusFinal
	default:
		return t.Card.StatusDraft
	}
}

// ColumnFrame returns the frame style for a column given its render state,
// tinting with the column's palette color.
func (t Theme) ColumnFrame(color string, focused, hovered, highlighted bool) lipgloss.Style {
	switch {
	case highlighted:
		return t.Column.FrameHighlight.BorderForeground(lipgloss.Color(viewmodel.Flash(color)))
	case hovered:
		return t.Column.FrameHovered
	case focused:
		return t.Column.FrameFocused.BorderForeground(lipgloss.Color(color))
	default:
		return t.Column.Frame.BorderForeground(lipgloss.Color(viewmodel.Dim(color)))
	}
}
