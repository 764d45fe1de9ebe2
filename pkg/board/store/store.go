// Package store holds the in-memory beat collection the board renders from.
// It mirrors an informer-style cache: the remote service is the single source
// of truth, the store is only ever replaced by the result of a completed
// fetch (never speculatively mutated), and consumers read snapshots and
// subscribe to emitted events.
package store

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/scriptloft/beatboard/pkg/screenplay"
	"github.com/scriptloft/beatboard/pkg/screenplay/service"
	"github.com/scriptloft/beatboard/pkg/tui/events"
)

// Store maintains the normalized beat list and emits typed events on refresh.
type Store struct {
	component events.ComponentID

	mu    sync.RWMutex
	beats []screenplay.Beat

	eventCh chan tea.Msg
}

// New creates an empty store that will emit events using the provided
// ComponentID (falls back to "store" if empty).
func New(component events.ComponentID) *Store {
	if component == "" {
		component = events.ComponentID("store")
	}
	return &Store{
		component: component,
		eventCh:   make(chan tea.Msg, 64),
	}
}

// Events exposes the store event channel for Bubble Tea subscriptions.
func (s *Store) Events() <-chan tea.Msg {
	return s.eventCh
}

// SetBeats replaces the snapshot with the provided list. Normalization is
// applied here, once, so downstream view-model and controller code can assume
// every scene list is a real list.
func (s *Store) SetBeats(beats []screenplay.Beat) {
	normalized := screenplay.Normalize(beats)
	s.mu.Lock()
	s.beats = normalized
	s.mu.Unlock()
	s.emit(events.BeatsReloadedMsg{Component: s.component, Count: len(normalized)})
}

// Refresh fetches the beat list from the service and replaces the snapshot.
// On error the existing snapshot is left untouched.
func (s *Store) Refresh(ctx context.Context, svc service.Service) error {
	beats, err := svc.Beats(ctx)
	if err != nil {
		s.emit(events.LoadFailedMsg{Component: s.component, Err: err})
		return err
	}
	s.SetBeats(beats)
	return nil
}

// Snapshot returns a copy of the current beats. The returned data should be
// treated as immutable by callers.
func (s *Store) Snapshot() []screenplay.Beat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBeats(s.beats)
}

// FindSceneBeat resolves the beat currently owning the scene.
func (s *Store) FindSceneBeat(sceneID string) (screenplay.Beat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return screenplay.FindSceneBeat(s.beats, sceneID)
}

// SceneCount returns the scene count for the beat, or -1 when unknown.
func (s *Store) SceneCount(beatID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return screenplay.SceneCount(s.beats, beatID)
}

// Len returns the number of beats in the snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.beats)
}

func (s *Store) emit(msg tea.Msg) {
	select {
	case s.eventCh <- msg:
	default:
		// Drop when the consumer is not draining; the next refresh carries
		// the full state anyway.
	}
}

func cloneBeats(beats []screenplay.Beat) []screenplay.Beat {
	if len(beats) == 0 {
		return nil
	}
	out := make([]screenplay.Beat, len(beats))
	for i, b := range beats {
		cloned := b
		cloned.Scenes = append(screenplay.SceneList{}, b.Scenes...)
		out[i] = cloned
	}
	return out
}
