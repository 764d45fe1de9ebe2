// Package highlight tracks the transient "beat/scene of interest" state fed
// by the shared navigation context. Highlights clear themselves after a fixed
// window; each new highlight supersedes any pending clear so a stale timer
// can never wipe a fresh highlight early.
package highlight

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// Window is how long a highlight stays visible without new context.
const Window = 3 * time.Second

// ScrollSettleDelay gives the board one render pass before the highlighted
// column is scrolled into view.
const ScrollSettleDelay = 120 * time.Millisecond

// ClearMsg asks the bridge to drop the highlight it was scheduled for.
type ClearMsg struct {
	Generation int
}

// ScrollMsg asks the board to bring the highlighted beat's column into view.
type ScrollMsg struct {
	BeatID     string
	Generation int
}

// State is the bridge's ephemeral highlight record. The zero value is an
// empty, usable state.
type State struct {
	beatID     string
	sceneID    string
	generation int
}

// Set records the externally supplied beat/scene of interest and returns the
// commands that schedule the auto-clear (and, when a beat is named, the
// one-shot scroll). Bumping the generation invalidates every previously
// scheduled clear.
func (s *State) Set(beatID, sceneID string) tea.Cmd {
	if beatID == "" && sceneID == "" {
		return nil
	}
	s.beatID = beatID
	s.sceneID = sceneID
	s.generation++

	generation := s.generation
	cmds := []tea.Cmd{
		tea.Tick(Window, func(time.Time) tea.Msg {
			return ClearMsg{Generation: generation}
		}),
	}
	if beatID != "" {
		cmds = append(cmds, tea.Tick(ScrollSettleDelay, func(time.Time) tea.Msg {
			return ScrollMsg{BeatID: beatID, Generation: generation}
		}))
	}
	return tea.Batch(cmds...)
}

// Apply handles a ClearMsg, ignoring clears scheduled for superseded
// highlights. It reports whether the state changed.
func (s *State) Apply(msg ClearMsg) bool {
	if msg.Generation != s.generation {
		return false
	}
	if s.beatID == "" && s.sceneID == "" {
		return false
	}
	s.beatID = ""
	s.sceneID = ""
	return true
}

// ShouldScroll reports whether the scroll request is still current.
func (s *State) ShouldScroll(msg ScrollMsg) bool {
	return msg.Generation == s.generation && msg.BeatID != "" && msg.BeatID == s.beatID
}

// Clear drops the highlight immediately (explicit user request).
func (s *State) Clear() {
	s.beatID = ""
	s.sceneID = ""
	s.generation++
}

// BeatID returns the highlighted beat, if any.
func (s *State) BeatID() (string, bool) {
	return s.beatID, s.beatID != ""
}

// SceneID returns the highlighted scene, if any.
func (s *State) SceneID() (string, bool) {
	return s.sceneID, s.sceneID != ""
}
