// Package boardcolumn renders one beat column: header, scene cards, and the
// hover/highlight states driven by the drag session and the context bridge.
package boardcolumn

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/scriptloft/beatboard/pkg/board/viewmodel"
	"github.com/scriptloft/beatboard/pkg/glyph"
	"github.com/scriptloft/beatboard/pkg/screenplay"
	"github.com/scriptloft/beatboard/pkg/tui/events"
	"github.com/scriptloft/beatboard/pkg/tui/theme"
)

const (
	headerLines    = 2 // title/count line plus spacer
	cardSeparation = 1
)

// cardSpan records where a card sits inside the column content so mouse
// coordinates can be resolved back to a scene.
type cardSpan struct {
	sceneID string
	start   int
	height  int
}

// Model renders a single column of the board.
type Model struct {
	column viewmodel.Column
	theme  theme.Theme
	id     events.ComponentID

	width  int
	height int

	cursor int
	scroll int

	focused          bool
	hovered          bool
	highlighted      bool
	highlightedScene string
	draggedScene     string

	spans []cardSpan
}

// NewModel constructs a column component for the given view-model column.
func NewModel(column viewmodel.Column, t theme.Theme) *Model {
	m := &Model{
		column: column,
		theme:  t,
		id:     events.ComponentID("column:" + column.Beat.ID),
	}
	m.rebuildSpans()
	return m
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// BeatID returns the beat backing this column.
func (m *Model) BeatID() string { return m.column.Beat.ID }

// Title returns the beat title shown in the column header.
func (m *Model) Title() string { return m.column.Beat.Title }

// SetColumn replaces the rendered column after a store refresh.
func (m *Model) SetColumn(column viewmodel.Column) {
	m.column = column
	if m.cursor >= len(column.Scenes) {
		m.cursor = len(column.Scenes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.rebuildSpans()
	m.ensureCursorVisible()
}

// SetSize updates the column dimensions (outer frame included).
func (m *Model) SetSize(width, height int) {
	if width < 12 {
		width = 12
	}
	if height < 6 {
		height = 6
	}
	m.width = width
	m.height = height
	m.rebuildSpans()
	m.ensureCursorVisible()
}

// Focus gives the column keyboard focus.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return events.DebugCmd(m.id, "focus", m.column.Beat.ID)
}

// Blur removes keyboard focus.
func (m *Model) Blur() tea.Cmd {
	m.focused = false
	return nil
}

// Focused reports whether the column owns keyboard focus.
func (m *Model) Focused() bool { return m.focused }

// SetHovered marks the column as the current drop target.
func (m *Model) SetHovered(on bool) { m.hovered = on }

// SetHighlighted applies the transient context highlight to the column.
func (m *Model) SetHighlighted(on bool) { m.highlighted = on }

// SetHighlightedScene applies the transient context highlight to one card.
func (m *Model) SetHighlightedScene(sceneID string) { m.highlightedScene = sceneID }

// SetDraggedScene dims the card currently rendered in the floating preview.
func (m *Model) SetDraggedScene(sceneID string) { m.draggedScene = sceneID }

// CursorScene returns the card under the cursor.
func (m *Model) CursorScene() (events.SceneRef, bool) {
	if m.cursor < 0 || m.cursor >= len(m.column.Scenes) {
		return events.SceneRef{}, false
	}
	s := m.column.Scenes[m.cursor]
	return events.SceneRef{ID: s.ID, Heading: s.Heading, Status: s.Status}, true
}

// SelectScene moves the cursor to the identified scene if present.
func (m *Model) SelectScene(sceneID string) bool {
	for i, s := range m.column.Scenes {
		if s.ID == sceneID {
			m.cursor = i
			m.ensureCursorVisible()
			return true
		}
	}
	return false
}

// SceneAt resolves a content-local row (0 = first line below the header) to
// the card rendered there.
func (m *Model) SceneAt(contentY int) (string, bool) {
	for _, span := range m.spans {
		if contentY >= span.start-m.scroll && contentY < span.start-m.scroll+span.height {
			return span.sceneID, true
		}
	}
	return "", false
}

// beatRef converts the column's beat for event payloads.
func (m *Model) beatRef() events.BeatRef {
	return events.BeatRef{ID: m.column.Beat.ID, Title: m.column.Beat.Title, Index: m.column.Index}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles cursor movement while focused.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		return m, m.moveCursor(-1)
	case "down", "j":
		return m, m.moveCursor(1)
	case "enter":
		if scene, ok := m.CursorScene(); ok {
			ref := m.beatRef()
			return m, func() tea.Msg {
				return events.SceneSelectMsg{Component: m.id, Beat: ref, Scene: scene}
			}
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) tea.Cmd {
	if len(m.column.Scenes) == 0 {
		return nil
	}
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.column.Scenes) {
		next = len(m.column.Scenes) - 1
	}
	if next == m.cursor {
		return nil
	}
	m.cursor = next
	m.ensureCursorVisible()
	scene, _ := m.CursorScene()
	ref := m.beatRef()
	return func() tea.Msg {
		return events.SceneHighlightMsg{Component: m.id, Beat: ref, Scene: scene}
	}
}

// View renders the framed column.
func (m *Model) View() string {
	frame := m.theme.ColumnFrame(m.column.Color, m.focused, m.hovered, m.highlighted)
	innerWidth := m.contentWidth()
	contentHeight := m.contentHeight()

	var b strings.Builder
	title := m.theme.Column.Title.Render(truncate(m.column.Beat.Label(), innerWidth-4))
	count := m.theme.Column.Count.Render(fmt.Sprintf(" %d", m.column.SceneCount()))
	b.WriteString(title + count + "\n\n")

	lines := m.cardLines(innerWidth)
	end := m.scroll + contentHeight
	if end > len(lines) {
		end = len(lines)
	}
	start := m.scroll
	if start > len(lines) {
		start = len(lines)
	}
	b.WriteString(strings.Join(lines[start:end], "\n"))

	body := lipgloss.NewStyle().
		Width(innerWidth).
		Height(contentHeight + headerLines).
		Render(strings.TrimRight(b.String(), "\n"))
	return frame.Width(innerWidth).Render(body)
}

// cardLines renders every card to its line slice (content coordinates).
func (m *Model) cardLines(width int) []string {
	if len(m.column.Scenes) == 0 {
		return []string{m.theme.Column.Empty.Render("no scenes")}
	}
	var lines []string
	for i, s := range m.column.Scenes {
		lines = append(lines, m.renderCard(i, s, width)...)
		if i < len(m.column.Scenes)-1 {
			lines = append(lines, "")
		}
	}
	return lines
}

func (m *Model) renderCard(idx int, s screenplay.Scene, width int) []string {
	style := m.theme.Card.Base
	switch {
	case s.ID != "" && s.ID == m.draggedScene:
		style = m.theme.Card.Dragged
	case s.ID != "" && s.ID == m.highlightedScene:
		style = m.theme.Card.Highlighted
	case m.focused && idx == m.cursor:
		style = m.theme.Card.Selected
	}

	symbol := m.theme.StatusStyle(s.Status).Render(glyph.Symbol(s.Status))
	heading := truncate(s.Label(), width-2)
	out := []string{style.Render(symbol + " " + heading)}

	if s.Synopsis != "" {
		wrapped := wordwrap.String(s.Synopsis, width-2)
		for _, line := range strings.SplitN(wrapped, "\n", 2)[:1] {
			out = append(out, m.theme.Card.Synopsis.Render("  "+line))
		}
	}
	return out
}

// rebuildSpans recomputes card positions for mouse hit-testing. Spans follow
// the same layout rules as cardLines.
func (m *Model) rebuildSpans() {
	m.spans = m.spans[:0]
	line := 0
	for _, s := range m.column.Scenes {
		height := 1
		if s.Synopsis != "" {
			height = 2
		}
		m.spans = append(m.spans, cardSpan{sceneID: s.ID, start: line, height: height})
		line += height + cardSeparation
	}
}

func (m *Model) ensureCursorVisible() {
	if m.cursor < 0 || m.cursor >= len(m.spans) {
		m.scroll = 0
		return
	}
	span := m.spans[m.cursor]
	contentHeight := m.contentHeight()
	if span.start < m.scroll {
		m.scroll = span.start
	}
	if bottom := span.start + span.height; bottom > m.scroll+contentHeight {
		m.scroll = bottom - contentHeight
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *Model) contentWidth() int {
	w := m.width - 4 // frame border + padding
	if w < 8 {
		w = 8
	}
	return w
}

func (m *Model) contentHeight() int {
	h := m.height - 2 - headerLines // frame border rows + header
	if h < 1 {
		h = 1
	}
	return h
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
