package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/scriptloft/beatboard/pkg/board/drag"
	"github.com/scriptloft/beatboard/pkg/board/highlight"
	"github.com/scriptloft/beatboard/pkg/navcontext"
	"github.com/scriptloft/beatboard/pkg/screenplay"
	"github.com/scriptloft/beatboard/pkg/tui/events"
)

type moveCall struct {
	sceneID string
	beatID  string
	order   int
}

type fakeService struct {
	mu       sync.Mutex
	beats    []screenplay.Beat
	beatsErr error
	moveErr  error
	moves    []moveCall
}

func (f *fakeService) Beats(ctx context.Context) ([]screenplay.Beat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.beatsErr != nil {
		return nil, f.beatsErr
	}
	return f.beats, nil
}

func (f *fakeService) MoveScene(ctx context.Context, sceneID, beatID string, order int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.moveErr != nil {
		return f.moveErr
	}
	f.moves = append(f.moves, moveCall{sceneID: sceneID, beatID: beatID, order: order})
	return nil
}

func boardFixture() *fakeService {
	return &fakeService{beats: []screenplay.Beat{
		{ID: "B1", Title: "Opening Image", Scenes: screenplay.SceneList{
			{ID: "S1", Heading: "INT. DINER - NIGHT"},
			{ID: "S2", Heading: "EXT. PARKING LOT - NIGHT"},
		}},
		{ID: "B2", Title: "Catalyst", Scenes: screenplay.SceneList{
			{ID: "S3", Heading: "INT. OFFICE - DAY"},
		}},
		{ID: "B3", Title: "Midpoint", Scenes: screenplay.SceneList{}},
	}}
}

// newTestModel builds a sized model with the fixture loaded through the
// store's event channel, the same path the running program uses.
func newTestModel(t *testing.T, svc *fakeService) *Model {
	t.Helper()
	m := New(svc, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	loadBeats(t, m)
	return m
}

func loadBeats(t *testing.T, m *Model) {
	t.Helper()
	if msg := m.refreshCmd()(); msg != nil {
		t.Fatalf("refresh cmd should deliver through the store channel, got %v", msg)
	}
	m.Update(m.waitForStore()())
}

func TestViewShowsBeatColumns(t *testing.T) {
	m := newTestModel(t, boardFixture())
	view := m.View()
	for _, want := range []string{"Opening Image", "Catalyst", "Midpoint", "INT. DINER - NIGHT"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDragMoveAppendsToDestination(t *testing.T) {
	svc := boardFixture()
	m := newTestModel(t, svc)

	// 100 cells wide, four visible columns of 25: x=2 is the first column,
	// x=30 the second. y=3 is the first content row.
	m.Update(tea.MouseClickMsg{X: 2, Y: 3, Button: tea.MouseLeft})
	if got := m.drag.State(); got != drag.StatePending {
		t.Fatalf("state after press = %v, want pending", got)
	}
	m.Update(tea.MouseMotionMsg{X: 30, Y: 3})
	if got := m.drag.State(); got != drag.StateDragging {
		t.Fatalf("state after motion = %v, want dragging", got)
	}

	_, cmd := m.handleMouseRelease(tea.MouseReleaseMsg{X: 30, Y: 3, Button: tea.MouseLeft})
	if cmd == nil {
		t.Fatal("release over a foreign column should issue a move")
	}
	msg := cmd()
	moved, ok := msg.(events.SceneMovedMsg)
	if !ok {
		t.Fatalf("release produced %T, want SceneMovedMsg", msg)
	}
	if moved.SceneID != "S1" || moved.ToBeat != "B2" {
		t.Fatalf("moved %s to %s, want S1 to B2", moved.SceneID, moved.ToBeat)
	}
	if len(svc.moves) != 1 {
		t.Fatalf("service saw %d moves, want 1", len(svc.moves))
	}
	// Appended to the destination's end: B2 held one scene before the drop.
	if got := svc.moves[0]; got != (moveCall{sceneID: "S1", beatID: "B2", order: 1}) {
		t.Fatalf("move call = %+v", got)
	}
}

func TestReleaseBelowThresholdSelects(t *testing.T) {
	svc := boardFixture()
	m := newTestModel(t, svc)

	m.Update(tea.MouseClickMsg{X: 2, Y: 3, Button: tea.MouseLeft})
	m.Update(tea.MouseMotionMsg{X: 3, Y: 3})
	_, cmd := m.handleMouseRelease(tea.MouseReleaseMsg{X: 3, Y: 3, Button: tea.MouseLeft})
	if cmd == nil {
		t.Fatal("short release should select the card")
	}
	sel, ok := cmd().(events.SceneSelectMsg)
	if !ok || sel.Scene.ID != "S1" {
		t.Fatalf("got %#v, want selection of S1", sel)
	}
	if len(svc.moves) != 0 {
		t.Fatalf("selection must not move anything, saw %d moves", len(svc.moves))
	}
}

func TestDropOnOwnColumnIsNoop(t *testing.T) {
	svc := boardFixture()
	m := newTestModel(t, svc)

	m.Update(tea.MouseClickMsg{X: 2, Y: 3, Button: tea.MouseLeft})
	m.Update(tea.MouseMotionMsg{X: 14, Y: 8})
	if got := m.drag.State(); got != drag.StateDragging {
		t.Fatalf("state = %v, want dragging", got)
	}
	_, cmd := m.handleMouseRelease(tea.MouseReleaseMsg{X: 14, Y: 8, Button: tea.MouseLeft})
	if cmd != nil {
		t.Fatal("drop on the owning column should do nothing")
	}
	if len(svc.moves) != 0 {
		t.Fatalf("noop drop reached the service: %+v", svc.moves)
	}
}

func TestEscCancelsDrag(t *testing.T) {
	m := newTestModel(t, boardFixture())

	m.Update(tea.MouseClickMsg{X: 2, Y: 3, Button: tea.MouseLeft})
	m.Update(tea.MouseMotionMsg{X: 30, Y: 3})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if got := m.drag.State(); got != drag.StateIdle {
		t.Fatalf("state after esc = %v, want idle", got)
	}
	if _, cmd := m.handleMouseRelease(tea.MouseReleaseMsg{X: 30, Y: 3, Button: tea.MouseLeft}); cmd != nil {
		t.Fatal("release after cancel should be inert")
	}
}

func TestMovePickerUsesAppendContract(t *testing.T) {
	svc := boardFixture()
	m := newTestModel(t, svc)

	m.Update(tea.KeyPressMsg{Text: "m", Code: 'm'})
	if m.picker == nil {
		t.Fatal("m should open the destination picker")
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should commit the move")
	}
	req, ok := cmd().(events.MoveSceneRequestMsg)
	if !ok {
		t.Fatalf("enter produced %T, want MoveSceneRequestMsg", cmd())
	}
	if req.SceneID != "S1" || req.ToBeat != "B2" || req.Order != 1 {
		t.Fatalf("request = %+v, want S1 to B2 at order 1", req)
	}

	_, cmd = m.Update(req)
	if m.picker != nil {
		t.Fatal("committing should close the picker")
	}
	if _, ok := cmd().(events.SceneMovedMsg); !ok {
		t.Fatal("commit should reach the service and succeed")
	}
	if got := svc.moves[0]; got != (moveCall{sceneID: "S1", beatID: "B2", order: 1}) {
		t.Fatalf("move call = %+v", got)
	}
}

func TestPickerEscCloses(t *testing.T) {
	m := newTestModel(t, boardFixture())
	m.Update(tea.KeyPressMsg{Text: "m", Code: 'm'})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.picker != nil {
		t.Fatal("esc should close the picker")
	}
}

func TestContextEventHighlightsBeat(t *testing.T) {
	m := newTestModel(t, boardFixture())

	m.Update(contextEventMsg{ctx: navcontext.Context{BeatID: "B2", SceneID: "S3"}})
	if beat, ok := m.highlight.BeatID(); !ok || beat != "B2" {
		t.Fatalf("highlight beat = %q, want B2", beat)
	}

	// A newer context supersedes the old one; the old clear timer must not
	// wipe the fresh highlight.
	m.Update(contextEventMsg{ctx: navcontext.Context{BeatID: "B1"}})
	m.Update(highlight.ClearMsg{Generation: 1})
	if beat, ok := m.highlight.BeatID(); !ok || beat != "B1" {
		t.Fatalf("stale clear removed the highlight, beat = %q", beat)
	}
	m.Update(highlight.ClearMsg{Generation: 2})
	if _, ok := m.highlight.BeatID(); ok {
		t.Fatal("current clear should remove the highlight")
	}
}

func TestSceneOnlyContextResolvesOwner(t *testing.T) {
	m := newTestModel(t, boardFixture())
	m.Update(contextEventMsg{ctx: navcontext.Context{SceneID: "S3"}})
	if beat, ok := m.highlight.BeatID(); !ok || beat != "B2" {
		t.Fatalf("highlight beat = %q, want owner B2", beat)
	}
}

func TestScrollMsgBringsColumnIntoView(t *testing.T) {
	m := newTestModel(t, boardFixture())
	// Narrow terminal: one visible column.
	m.Update(tea.WindowSizeMsg{Width: 24, Height: 24})

	m.Update(contextEventMsg{ctx: navcontext.Context{BeatID: "B3"}})
	m.Update(highlight.ScrollMsg{Generation: 1})
	if m.scroll != 2 {
		t.Fatalf("scroll = %d, want 2 (B3 visible)", m.scroll)
	}
}

func TestLoadFailureKeepsBoardAndToasts(t *testing.T) {
	svc := boardFixture()
	m := newTestModel(t, svc)

	svc.mu.Lock()
	svc.beatsErr = errors.New("upstream down")
	svc.mu.Unlock()

	_ = m.refreshCmd()()
	_, cmd := m.Update(m.waitForStore()())
	if cmd == nil {
		t.Fatal("load failure should surface a toast")
	}
	if m.toasts.Len() != 1 {
		t.Fatalf("toast count = %d, want 1", m.toasts.Len())
	}
	if len(m.columns) != 3 {
		t.Fatalf("failed refresh dropped columns: %d", len(m.columns))
	}
}

func TestMoveFailureResyncsAndToasts(t *testing.T) {
	svc := boardFixture()
	m := newTestModel(t, svc)

	_, cmd := m.Update(events.MoveFailedMsg{
		Component: componentID,
		SceneID:   "S1",
		ToBeat:    "B2",
		Err:       errors.New("scene is locked"),
	})
	if cmd == nil {
		t.Fatal("failure should refresh and toast")
	}
	if m.toasts.Len() != 1 {
		t.Fatalf("toast count = %d, want 1", m.toasts.Len())
	}
}
