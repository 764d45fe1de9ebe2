// Package toast renders transient notifications that expire on their own.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/scriptloft/beatboard/pkg/tui/events"
	"github.com/scriptloft/beatboard/pkg/tui/theme"
)

// DefaultDuration is how long a toast stays on screen.
const DefaultDuration = 4 * time.Second

// ExpireMsg removes the toast it was scheduled for.
type ExpireMsg struct {
	Generation int
}

type item struct {
	level      events.ToastLevel
	text       string
	generation int
}

// Model keeps the active notification stack, newest last.
type Model struct {
	theme      theme.Theme
	width      int
	duration   time.Duration
	items      []item
	generation int
}

// NewModel constructs an empty toast stack.
func NewModel(t theme.Theme) *Model {
	return &Model{theme: t, duration: DefaultDuration}
}

// SetWidth updates the render width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetDuration overrides the expiry window (tests).
func (m *Model) SetDuration(d time.Duration) {
	if d > 0 {
		m.duration = d
	}
}

// Push appends a notification and schedules its expiry.
func (m *Model) Push(level events.ToastLevel, text string) tea.Cmd {
	if text == "" {
		return nil
	}
	m.generation++
	generation := m.generation
	m.items = append(m.items, item{level: level, text: text, generation: generation})
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return ExpireMsg{Generation: generation}
	})
}

// Update drops expired toasts. Expiries for toasts already gone are ignored.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	expire, ok := msg.(ExpireMsg)
	if !ok {
		return m, nil
	}
	kept := m.items[:0]
	for _, it := range m.items {
		if it.generation != expire.Generation {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return m, nil
}

// Len reports the number of visible toasts.
func (m *Model) Len() int { return len(m.items) }

// View renders the stack, one line per toast.
func (m *Model) View() string {
	if len(m.items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.items))
	for _, it := range m.items {
		style := m.style(it.level)
		if m.width > 0 {
			style = style.MaxWidth(m.width)
		}
		lines = append(lines, style.Render(it.text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) style(level events.ToastLevel) lipgloss.Style {
	switch level {
	case events.ToastSuccess:
		return m.theme.Toast.Success
	case events.ToastError:
		return m.theme.Toast.Error
	default:
		return m.theme.Toast.Info
	}
}
