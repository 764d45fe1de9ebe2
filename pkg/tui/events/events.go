// Package events defines the typed messages components exchange through the
// Bubble Tea update loop.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/scriptloft/beatboard/pkg/screenplay"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// BeatRef captures the metadata required to identify a beat in
// cross-component events.
type BeatRef struct {
	ID    string
	Title string
	Index int
}

// Label returns a human-friendly identifier for the beat.
func (r BeatRef) Label() string {
	if r.Title != "" {
		return r.Title
	}
	return r.ID
}

// SceneRef describes a scene card within a column.
type SceneRef struct {
	ID      string
	Heading string
	Status  screenplay.Status
}

// Label returns a human-friendly identifier for the scene.
func (r SceneRef) Label() string {
	if r.Heading != "" {
		return r.Heading
	}
	return r.ID
}

// SceneHighlightMsg is emitted when a column's cursor lands on a scene card.
type SceneHighlightMsg struct {
	Component ComponentID
	Beat      BeatRef
	Scene     SceneRef
}

// Describe renders the highlight in a human-friendly format for logs.
func (m SceneHighlightMsg) Describe() string {
	return fmt.Sprintf(`beat:%q scene:%q`, m.Beat.Label(), m.Scene.Label())
}

// SceneSelectMsg is emitted when the user activates a scene card (click below
// the drag threshold, or Enter). Selection opens the scene elsewhere; the
// board itself only reports it.
type SceneSelectMsg struct {
	Component ComponentID
	Beat      BeatRef
	Scene     SceneRef
}

// Describe renders the selection for logs.
func (m SceneSelectMsg) Describe() string {
	return fmt.Sprintf(`beat:%q scene:%q`, m.Beat.Label(), m.Scene.Label())
}

// MoveSceneRequestMsg asks the app to commit a scene move to the service.
type MoveSceneRequestMsg struct {
	Component ComponentID
	SceneID   string
	FromBeat  string
	ToBeat    string
	Order     int
}

// Describe renders the move request for logs.
func (m MoveSceneRequestMsg) Describe() string {
	return fmt.Sprintf(`scene:%q from:%q to:%q order:%d`, m.SceneID, m.FromBeat, m.ToBeat, m.Order)
}

// MoveSceneRequestCmd wraps MoveSceneRequestMsg in a tea.Cmd.
func MoveSceneRequestCmd(component ComponentID, sceneID, fromBeat, toBeat string, order int) tea.Cmd {
	return func() tea.Msg {
		return MoveSceneRequestMsg{
			Component: component,
			SceneID:   sceneID,
			FromBeat:  fromBeat,
			ToBeat:    toBeat,
			Order:     order,
		}
	}
}

// SceneMovedMsg announces a committed move after the service accepted it.
type SceneMovedMsg struct {
	Component ComponentID
	SceneID   string
	ToBeat    string
}

// Describe renders the committed move for logs.
func (m SceneMovedMsg) Describe() string {
	return fmt.Sprintf(`scene:%q to:%q`, m.SceneID, m.ToBeat)
}

// MoveFailedMsg announces a rejected move. Err carries the service message.
type MoveFailedMsg struct {
	Component ComponentID
	SceneID   string
	ToBeat    string
	Err       error
}

// Describe renders the failure for logs.
func (m MoveFailedMsg) Describe() string {
	return fmt.Sprintf(`scene:%q to:%q err:%v`, m.SceneID, m.ToBeat, m.Err)
}

// BeatsReloadedMsg announces that the store refreshed its beat snapshot and
// columns should be rebuilt.
type BeatsReloadedMsg struct {
	Component ComponentID
	Count     int
}

// Describe renders the reload for logs.
func (m BeatsReloadedMsg) Describe() string {
	return fmt.Sprintf(`beats:%d`, m.Count)
}

// LoadFailedMsg announces that a beat fetch failed.
type LoadFailedMsg struct {
	Component ComponentID
	Err       error
}

// Describe renders the load failure for logs.
func (m LoadFailedMsg) Describe() string {
	return fmt.Sprintf(`err:%v`, m.Err)
}

// ContextHighlightMsg carries the externally supplied beat/scene of interest
// from the shared navigation context.
type ContextHighlightMsg struct {
	Component ComponentID
	BeatID    string
	SceneID   string
}

// Describe renders the context signal for logs.
func (m ContextHighlightMsg) Describe() string {
	return fmt.Sprintf(`beat:%q scene:%q`, m.BeatID, m.SceneID)
}

// ToastLevel classifies transient notifications.
type ToastLevel string

const (
	// ToastInfo is a neutral notice.
	ToastInfo ToastLevel = "info"
	// ToastSuccess confirms a committed action.
	ToastSuccess ToastLevel = "success"
	// ToastError surfaces a failure the user should read.
	ToastError ToastLevel = "error"
)

// ToastMsg requests a transient notification.
type ToastMsg struct {
	Component ComponentID
	Level     ToastLevel
	Text      string
}

// Describe renders the toast for logs.
func (m ToastMsg) Describe() string {
	return fmt.Sprintf(`level:%q text:%q`, m.Level, m.Text)
}

// ToastCmd wraps ToastMsg in a tea.Cmd.
func ToastCmd(component ComponentID, level ToastLevel, text string) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Component: component, Level: level, Text: text}
	}
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// DebugMsg captures optional diagnostic notes emitted by components.
type DebugMsg struct {
	Component ComponentID
	Context   string
	Detail    string
}

// Describe renders the debug message in a human-readable format.
func (m DebugMsg) Describe() string {
	return fmt.Sprintf(`component:%q context:%q detail:%q`, m.Component, m.Context, m.Detail)
}

// DebugCmd wraps DebugMsg creation in a tea.Cmd helper.
func DebugCmd(component ComponentID, context, detail string) tea.Cmd {
	return func() tea.Msg {
		return DebugMsg{Component: component, Context: context, Detail: detail}
	}
}
