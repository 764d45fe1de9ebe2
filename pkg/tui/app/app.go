// Package app wires the board together: the beat store, the drag session
// controller, the highlight bridge, and the per-column components, all driven
// by one Bubble Tea update loop.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/scriptloft/beatboard/pkg/board/drag"
	"github.com/scriptloft/beatboard/pkg/board/highlight"
	"github.com/scriptloft/beatboard/pkg/board/store"
	"github.com/scriptloft/beatboard/pkg/board/viewmodel"
	"github.com/scriptloft/beatboard/pkg/navcontext"
	"github.com/scriptloft/beatboard/pkg/screenplay/service"
	"github.com/scriptloft/beatboard/pkg/tui/components/boardcolumn"
	"github.com/scriptloft/beatboard/pkg/tui/components/statusbar"
	"github.com/scriptloft/beatboard/pkg/tui/components/toast"
	"github.com/scriptloft/beatboard/pkg/tui/events"
	"github.com/scriptloft/beatboard/pkg/tui/theme"
)

const (
	componentID = events.ComponentID("app")

	minColumnWidth = 24
	footerReserve  = 2 // status bar plus one toast line
)

type storeEventMsg struct{ msg tea.Msg }

type contextWatchStartedMsg struct {
	ch     <-chan navcontext.Context
	cancel context.CancelFunc
	err    error
}

type contextEventMsg struct{ ctx navcontext.Context }

type contextWatchStoppedMsg struct{}

type contextClearedMsg struct{ err error }

// Model is the root board model.
type Model struct {
	svc    service.Service
	store  *store.Store
	bridge *navcontext.Bridge

	ctx    context.Context
	cancel context.CancelFunc

	drag      *drag.Controller
	highlight highlight.State
	theme     theme.Theme

	columns []*boardcolumn.Model
	focus   int
	scroll  int // leftmost visible column index

	picker *movePicker
	footer statusbar.Model
	toasts *toast.Model

	termWidth  int
	termHeight int

	contextCh     <-chan navcontext.Context
	contextCancel context.CancelFunc

	logger io.Writer
}

// New builds the board model. bridge may be nil when no shared context file
// is configured.
func New(svc service.Service, bridge *navcontext.Bridge) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	th := theme.Default()
	return &Model{
		svc:    svc,
		store:  store.New("store"),
		bridge: bridge,
		ctx:    ctx,
		cancel: cancel,
		drag:   drag.NewController(drag.Config{}),
		theme:  th,
		footer: statusbar.New(th),
		toasts: toast.NewModel(th),
	}
}

// SetLogger directs message traffic and component debug events to w.
func (m *Model) SetLogger(w io.Writer) { m.logger = w }

// Init kicks off the first fetch and both channel subscriptions.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.waitForStore(), m.startContextWatch())
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		// Outcome arrives through the store's event channel.
		_ = m.store.Refresh(m.ctx, m.svc)
		return nil
	}
}

func (m *Model) waitForStore() tea.Cmd {
	ch := m.store.Events()
	return func() tea.Msg {
		return storeEventMsg{msg: <-ch}
	}
}

func (m *Model) startContextWatch() tea.Cmd {
	if m.bridge == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(m.ctx)
		ch, err := m.bridge.Watch(ctx)
		if err != nil {
			cancel()
			return contextWatchStartedMsg{err: err}
		}
		return contextWatchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForContext() tea.Cmd {
	if m.contextCh == nil {
		return nil
	}
	ch := m.contextCh
	return func() tea.Msg {
		if nav, ok := <-ch; ok {
			return contextEventMsg{ctx: nav}
		}
		return contextWatchStoppedMsg{}
	}
}

func (m *Model) moveCmd(sceneID, toBeat string, order int) tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.MoveScene(m.ctx, sceneID, toBeat, order); err != nil {
			return events.MoveFailedMsg{Component: componentID, SceneID: sceneID, ToBeat: toBeat, Err: err}
		}
		return events.SceneMovedMsg{Component: componentID, SceneID: sceneID, ToBeat: toBeat}
	}
}

// Update routes messages. Component events bubble up here and are translated
// into service calls, store refreshes, and toast notifications.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.logMsg(msg)

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = v.Width
		m.termHeight = v.Height
		m.applySizes()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(v)

	case tea.MouseClickMsg:
		return m.handleMouseClick(v)

	case tea.MouseMotionMsg:
		return m.handleMouseMotion(v)

	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(v)

	case storeEventMsg:
		return m, tea.Batch(m.waitForStore(), m.routeStoreEvent(v.msg))

	case contextWatchStartedMsg:
		if v.err != nil {
			return m, m.toasts.Push(events.ToastError, fmt.Sprintf("context watch failed: %v", v.err))
		}
		m.contextCh = v.ch
		m.contextCancel = v.cancel
		return m, m.waitForContext()

	case contextEventMsg:
		return m, tea.Batch(m.waitForContext(), m.applyContext(v.ctx))

	case contextWatchStoppedMsg:
		m.contextCh = nil
		m.contextCancel = nil
		return m, nil

	case contextClearedMsg:
		if v.err != nil {
			return m, m.toasts.Push(events.ToastError, fmt.Sprintf("clear context: %v", v.err))
		}
		m.highlight.Clear()
		m.applyHighlight()
		return m, m.toasts.Push(events.ToastInfo, "context cleared")

	case highlight.ClearMsg:
		if m.highlight.Apply(v) {
			m.applyHighlight()
		}
		return m, nil

	case highlight.ScrollMsg:
		if m.highlight.ShouldScroll(v) {
			if beatID, ok := m.highlight.BeatID(); ok {
				m.scrollToBeat(beatID)
			}
		}
		return m, nil

	case toast.ExpireMsg:
		_, cmd := m.toasts.Update(v)
		return m, cmd

	case events.MoveSceneRequestMsg:
		m.closePicker()
		return m, m.moveCmd(v.SceneID, v.ToBeat, v.Order)

	case events.SceneMovedMsg:
		return m, tea.Batch(
			m.refreshCmd(),
			m.toasts.Push(events.ToastSuccess, fmt.Sprintf("scene %s moved", v.SceneID)),
		)

	case events.MoveFailedMsg:
		// The server owns the truth; resync so the board never shows a
		// move the service rejected.
		return m, tea.Batch(
			m.refreshCmd(),
			m.toasts.Push(events.ToastError, fmt.Sprintf("move rejected: %v", v.Err)),
		)

	case events.SceneHighlightMsg:
		m.footer.SetStatus(fmt.Sprintf("%s · %s", v.Beat.Label(), v.Scene.Label()))
		return m, nil

	case events.SceneSelectMsg:
		m.footer.SetStatus(fmt.Sprintf("opened %s", v.Scene.Label()))
		return m, nil

	case events.ToastMsg:
		return m, m.toasts.Push(v.Level, v.Text)

	case events.DebugMsg:
		if m.logger != nil {
			fmt.Fprintf(m.logger, "%s %s\n", v.Component, v.Describe())
		}
		return m, nil
	}

	return m, nil
}

// routeStoreEvent handles messages delivered via the store channel.
func (m *Model) routeStoreEvent(msg tea.Msg) tea.Cmd {
	switch v := msg.(type) {
	case events.BeatsReloadedMsg:
		m.rebuildColumns()
		m.footer.SetStatus(fmt.Sprintf("%d beats", v.Count))
		return nil
	case events.LoadFailedMsg:
		return m.toasts.Push(events.ToastError, fmt.Sprintf("load beats: %v", v.Err))
	}
	return nil
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.picker != nil {
		return m, m.updatePicker(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.stopWatches()
		return m, tea.Quit

	case "esc":
		if m.drag.State() != drag.StateIdle {
			m.drag.Cancel()
			m.clearDragAffordances()
		}
		return m, nil

	case "left", "h":
		return m, m.focusColumn(m.focus - 1)

	case "right", "l":
		return m, m.focusColumn(m.focus + 1)

	case "r":
		return m, m.refreshCmd()

	case "c":
		return m, m.clearContextCmd()

	case "m":
		return m, m.openPicker()
	}

	if col, ok := m.focusedColumn(); ok {
		_, cmd := col.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.picker != nil || msg.Button != tea.MouseLeft {
		return m, nil
	}
	idx, ok := m.columnIndexAt(msg.X)
	if !ok {
		return m, nil
	}
	var cmds []tea.Cmd
	if idx != m.focus {
		cmds = append(cmds, m.focusColumn(idx))
	}
	col := m.columns[idx]
	sceneID, ok := col.SceneAt(m.contentRow(msg.Y))
	if !ok {
		return m, tea.Batch(cmds...)
	}
	col.SelectScene(sceneID)
	m.drag.PointerDown(sceneID, msg.X, msg.Y)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	if m.picker != nil {
		return m, nil
	}
	m.drag.PointerMove(msg.X, msg.Y)
	if m.drag.State() != drag.StateDragging {
		return m, nil
	}

	hover := ""
	if idx, ok := m.columnIndexAt(msg.X); ok {
		hover = m.columns[idx].BeatID()
	}
	m.drag.Hover(hover)

	sceneID, _ := m.drag.SceneID()
	for _, col := range m.columns {
		col.SetHovered(hover != "" && col.BeatID() == hover)
		col.SetDraggedScene(sceneID)
	}
	m.footer.SetMode(statusbar.ModeDragging)
	if scene, ok := m.sceneRef(sceneID); ok {
		m.footer.SetStatus(fmt.Sprintf("moving %s", scene.Label()))
	}
	return m, nil
}

func (m *Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	if m.picker != nil {
		return m, nil
	}
	req, result := m.drag.Drop(m.store.Snapshot())
	m.clearDragAffordances()

	switch result {
	case drag.DropSelect:
		if col, ok := m.focusedColumn(); ok {
			if scene, ok := col.CursorScene(); ok {
				return m, func() tea.Msg {
					return events.SceneSelectMsg{Component: col.ID(), Beat: events.BeatRef{ID: col.BeatID()}, Scene: scene}
				}
			}
		}
	case drag.DropMove:
		return m, m.moveCmd(req.SceneID, req.ToBeatID, req.Order)
	}
	return m, nil
}

func (m *Model) clearDragAffordances() {
	for _, col := range m.columns {
		col.SetHovered(false)
		col.SetDraggedScene("")
	}
	m.footer.SetMode(statusbar.ModeBrowse)
}

// applyContext turns a navigation context document into highlight state.
func (m *Model) applyContext(nav navcontext.Context) tea.Cmd {
	if nav.Empty() {
		m.highlight.Clear()
		m.applyHighlight()
		return nil
	}
	beatID := nav.BeatID
	if beatID == "" && nav.SceneID != "" {
		if beat, ok := m.store.FindSceneBeat(nav.SceneID); ok {
			beatID = beat.ID
		}
	}
	cmd := m.highlight.Set(beatID, nav.SceneID)
	m.applyHighlight()
	return tea.Batch(cmd, events.DebugCmd(componentID, "context",
		events.ContextHighlightMsg{Component: componentID, BeatID: nav.BeatID, SceneID: nav.SceneID}.Describe()))
}

// applyHighlight pushes the bridge state down to every column.
func (m *Model) applyHighlight() {
	beatID, _ := m.highlight.BeatID()
	sceneID, _ := m.highlight.SceneID()
	for _, col := range m.columns {
		col.SetHighlighted(beatID != "" && col.BeatID() == beatID)
		col.SetHighlightedScene(sceneID)
	}
}

func (m *Model) clearContextCmd() tea.Cmd {
	if m.bridge == nil {
		m.highlight.Clear()
		m.applyHighlight()
		return nil
	}
	return func() tea.Msg {
		return contextClearedMsg{err: m.bridge.Clear()}
	}
}

func (m *Model) rebuildColumns() {
	cols := viewmodel.BuildColumns(m.store.Snapshot())
	prev := make(map[string]*boardcolumn.Model, len(m.columns))
	for _, c := range m.columns {
		prev[c.BeatID()] = c
	}
	next := make([]*boardcolumn.Model, 0, len(cols))
	for _, c := range cols {
		if old, ok := prev[c.Beat.ID]; ok {
			old.SetColumn(c)
			next = append(next, old)
			continue
		}
		next = append(next, boardcolumn.NewModel(c, m.theme))
	}
	m.columns = next
	if m.focus >= len(m.columns) {
		m.focus = len(m.columns) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	m.applySizes()
	m.applyHighlight()
	if col, ok := m.focusedColumn(); ok && !col.Focused() {
		col.Focus()
	}
}

func (m *Model) focusColumn(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.columns) || idx == m.focus {
		return nil
	}
	var cmds []tea.Cmd
	if col, ok := m.focusedColumn(); ok {
		cmds = append(cmds, col.Blur())
	}
	m.focus = idx
	cmds = append(cmds, m.columns[idx].Focus())
	m.ensureFocusVisible()
	return tea.Batch(cmds...)
}

func (m *Model) focusedColumn() (*boardcolumn.Model, bool) {
	if m.focus < 0 || m.focus >= len(m.columns) {
		return nil, false
	}
	return m.columns[m.focus], true
}

func (m *Model) sceneRef(sceneID string) (events.SceneRef, bool) {
	for _, beat := range m.store.Snapshot() {
		for _, s := range beat.Scenes {
			if s.ID == sceneID {
				return events.SceneRef{ID: s.ID, Heading: s.Heading}, true
			}
		}
	}
	return events.SceneRef{}, false
}

// scrollToBeat brings the named column into the visible window.
func (m *Model) scrollToBeat(beatID string) {
	for i, col := range m.columns {
		if col.BeatID() != beatID {
			continue
		}
		visible := m.visibleColumns()
		if i < m.scroll {
			m.scroll = i
		} else if i >= m.scroll+visible {
			m.scroll = i - visible + 1
		}
		return
	}
}

func (m *Model) ensureFocusVisible() {
	visible := m.visibleColumns()
	if m.focus < m.scroll {
		m.scroll = m.focus
	} else if m.focus >= m.scroll+visible {
		m.scroll = m.focus - visible + 1
	}
}

func (m *Model) visibleColumns() int {
	if m.termWidth <= 0 {
		return 1
	}
	n := m.termWidth / minColumnWidth
	if n < 1 {
		n = 1
	}
	return n
}

func (m *Model) columnWidth() int {
	return m.termWidth / m.visibleColumns()
}

func (m *Model) boardHeight() int {
	h := m.termHeight - footerReserve
	if h < 6 {
		h = 6
	}
	return h
}

// columnIndexAt resolves a terminal x coordinate to a column index.
func (m *Model) columnIndexAt(x int) (int, bool) {
	if len(m.columns) == 0 || m.termWidth == 0 {
		return 0, false
	}
	w := m.columnWidth()
	if w <= 0 || x < 0 {
		return 0, false
	}
	idx := m.scroll + x/w
	if idx < 0 || idx >= len(m.columns) {
		return 0, false
	}
	return idx, true
}

// contentRow translates a terminal y coordinate into a column content row
// (0 = the first card line below the header).
func (m *Model) contentRow(y int) int {
	return y - 1 - 2 // top border, then title and spacer
}

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	w := m.columnWidth()
	h := m.boardHeight()
	for _, col := range m.columns {
		col.SetSize(w, h)
	}
	m.footer.SetWidth(m.termWidth)
	m.toasts.SetWidth(m.termWidth)
	m.ensureFocusVisible()
	if m.picker != nil {
		m.picker.SetSize(m.termWidth, h)
	}
}

func (m *Model) stopWatches() {
	if m.contextCancel != nil {
		m.contextCancel()
		m.contextCancel = nil
	}
	m.cancel()
}

func (m *Model) logMsg(msg tea.Msg) {
	if m.logger == nil {
		return
	}
	if d, ok := msg.(interface{ Describe() string }); ok {
		fmt.Fprintf(m.logger, "%T %s\n", msg, d.Describe())
	}
}

// View renders the visible slice of columns, the toast line, and the footer.
func (m *Model) View() string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "loading beat board…"
	}

	var board string
	switch {
	case m.picker != nil:
		board = lipgloss.Place(m.termWidth, m.boardHeight(), lipgloss.Center, lipgloss.Center, m.picker.View())
	case len(m.columns) == 0:
		board = lipgloss.Place(m.termWidth, m.boardHeight(), lipgloss.Center, lipgloss.Center, "no beats yet · press r to refresh")
	default:
		visible := m.visibleColumns()
		end := m.scroll + visible
		if end > len(m.columns) {
			end = len(m.columns)
		}
		views := make([]string, 0, end-m.scroll)
		for _, col := range m.columns[m.scroll:end] {
			views = append(views, col.View())
		}
		board = lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}

	toastLine := m.toasts.View()
	if preview := m.dragPreview(); preview != "" {
		toastLine = preview
	}
	if toastLine == "" {
		toastLine = " "
	}
	return lipgloss.JoinVertical(lipgloss.Left, board, toastLine, m.footer.View())
}

// dragPreview renders the floating card line that follows an active drag.
func (m *Model) dragPreview() string {
	if m.drag.State() != drag.StateDragging {
		return ""
	}
	sceneID, ok := m.drag.SceneID()
	if !ok {
		return ""
	}
	ref, ok := m.sceneRef(sceneID)
	if !ok {
		return ""
	}
	label := "⠿ " + ref.Label()
	if hover, ok := m.drag.HoverBeat(); ok {
		for _, col := range m.columns {
			if col.BeatID() == hover {
				label = fmt.Sprintf("%s → %s", label, col.Title())
				break
			}
		}
	}
	return m.theme.Footer.Mode.Render(label)
}

// Run launches the interactive board. BEATBOARD_LOG names an optional file
// that receives the message/event trace for the session.
func Run(svc service.Service, bridge *navcontext.Bridge) error {
	m := New(svc, bridge)
	if path := os.Getenv("BEATBOARD_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("app: open log: %w", err)
		}
		defer f.Close()
		m.SetLogger(f)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
