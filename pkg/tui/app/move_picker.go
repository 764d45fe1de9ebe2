package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/scriptloft/beatboard/pkg/screenplay"
	"github.com/scriptloft/beatboard/pkg/tui/components/statusbar"
	"github.com/scriptloft/beatboard/pkg/tui/events"
	"github.com/scriptloft/beatboard/pkg/tui/theme"
)

// movePicker is the keyboard path to the same move contract the drag gesture
// uses: pick a destination beat and the scene is appended to its end.
type movePicker struct {
	list  list.Model
	scene events.SceneRef
	from  events.BeatRef
	theme theme.Theme
}

type beatItem struct {
	beat screenplay.Beat
}

func (i beatItem) Title() string { return i.beat.Title }

func (i beatItem) Description() string {
	return fmt.Sprintf("%d scenes", len(i.beat.Scenes))
}

func (i beatItem) FilterValue() string { return i.beat.Title }

func newMovePicker(scene events.SceneRef, from events.BeatRef, beats []screenplay.Beat, th theme.Theme) *movePicker {
	items := make([]list.Item, 0, len(beats))
	for _, b := range beats {
		if b.ID == from.ID {
			continue
		}
		items = append(items, beatItem{beat: b})
	}

	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	l := list.New(items, d, 40, 12)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)

	return &movePicker{list: l, scene: scene, from: from, theme: th}
}

func (p *movePicker) SetSize(width, height int) {
	w := width / 2
	if w < 30 {
		w = 30
	}
	h := height - 6
	if h < 6 {
		h = 6
	}
	p.list.SetSize(w-4, h)
}

func (p *movePicker) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return cmd
}

// Selected returns the destination beat under the cursor.
func (p *movePicker) Selected() (screenplay.Beat, bool) {
	item, ok := p.list.SelectedItem().(beatItem)
	if !ok {
		return screenplay.Beat{}, false
	}
	return item.beat, true
}

func (p *movePicker) View() string {
	title := fmt.Sprintf("Move %s", p.scene.Label())
	header := lipgloss.NewStyle().Bold(true).Render(title)
	hint := lipgloss.NewStyle().Faint(true).Render("enter move · esc cancel")
	body := lipgloss.JoinVertical(lipgloss.Left, header, "", p.list.View(), hint)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(body)
}

// openPicker starts the keyboard move flow for the focused column's cursor
// scene.
func (m *Model) openPicker() tea.Cmd {
	col, ok := m.focusedColumn()
	if !ok {
		return nil
	}
	scene, ok := col.CursorScene()
	if !ok {
		return m.toasts.Push(events.ToastInfo, "no scene selected")
	}
	beats := m.store.Snapshot()
	if len(beats) < 2 {
		return m.toasts.Push(events.ToastInfo, "no other beat to move to")
	}
	owner, ok := m.store.FindSceneBeat(scene.ID)
	if !ok {
		return m.toasts.Push(events.ToastError, fmt.Sprintf("scene %s is gone, refreshing", scene.ID))
	}
	m.picker = newMovePicker(scene, events.BeatRef{ID: owner.ID, Title: owner.Title}, beats, m.theme)
	m.picker.SetSize(m.termWidth, m.boardHeight())
	m.footer.SetMode(statusbar.ModeMovePicker)
	return nil
}

func (m *Model) closePicker() {
	m.picker = nil
	m.footer.SetMode(statusbar.ModeBrowse)
}

func (m *Model) updatePicker(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closePicker()
		return nil
	case "enter":
		dest, ok := m.picker.Selected()
		if !ok {
			m.closePicker()
			return nil
		}
		scene := m.picker.scene
		from := m.picker.from
		if dest.ID == from.ID {
			m.closePicker()
			return nil
		}
		// Same contract as a drop: append to the destination's end.
		order := m.store.SceneCount(dest.ID)
		if order < 0 {
			order = 0
		}
		return events.MoveSceneRequestCmd(componentID, scene.ID, from.ID, dest.ID, order)
	}
	return m.picker.Update(msg)
}
