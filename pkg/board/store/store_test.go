package store

import (
	"context"
	"errors"
	"testing"

	"github.com/scriptloft/beatboard/pkg/screenplay"
	"github.com/scriptloft/beatboard/pkg/tui/events"
)

type fakeService struct {
	beats []screenplay.Beat
	err   error
	moved []string
}

func (f *fakeService) Beats(ctx context.Context) ([]screenplay.Beat, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.beats, nil
}

func (f *fakeService) MoveScene(ctx context.Context, sceneID, beatID string, order int) error {
	f.moved = append(f.moved, sceneID)
	return nil
}

func TestRefreshReplacesSnapshot(t *testing.T) {
	svc := &fakeService{beats: []screenplay.Beat{
		{ID: "B1", Scenes: screenplay.SceneList{{ID: "S1"}}},
		{ID: "B2"},
	}}
	s := New("test")

	if err := s.Refresh(context.Background(), svc); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 beats, got %d", s.Len())
	}

	snap := s.Snapshot()
	if snap[1].Scenes == nil {
		t.Fatalf("expected normalized scene list for B2")
	}

	select {
	case msg := <-s.Events():
		reload, ok := msg.(events.BeatsReloadedMsg)
		if !ok {
			t.Fatalf("expected BeatsReloadedMsg, got %T", msg)
		}
		if reload.Count != 2 {
			t.Fatalf("expected reload count 2, got %d", reload.Count)
		}
	default:
		t.Fatalf("expected reload event emitted")
	}
}

func TestRefreshFailureKeepsSnapshot(t *testing.T) {
	s := New("test")
	s.SetBeats([]screenplay.Beat{{ID: "B1", Scenes: screenplay.SceneList{{ID: "S1"}}}})
	drain(s)

	svc := &fakeService{err: errors.New("boom")}
	if err := s.Refresh(context.Background(), svc); err == nil {
		t.Fatalf("expected refresh error")
	}
	if s.Len() != 1 {
		t.Fatalf("failed refresh must not clear the snapshot")
	}
	if _, ok := s.FindSceneBeat("S1"); !ok {
		t.Fatalf("existing scenes must survive a failed refresh")
	}

	select {
	case msg := <-s.Events():
		if _, ok := msg.(events.LoadFailedMsg); !ok {
			t.Fatalf("expected LoadFailedMsg, got %T", msg)
		}
	default:
		t.Fatalf("expected load failure event")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New("test")
	s.SetBeats([]screenplay.Beat{{ID: "B1", Scenes: screenplay.SceneList{{ID: "S1"}}}})

	snap := s.Snapshot()
	snap[0].Scenes[0].ID = "tampered"

	if _, ok := s.FindSceneBeat("S1"); !ok {
		t.Fatalf("mutating a snapshot must not reach the store")
	}
}

func TestMoveScenarioAfterRefresh(t *testing.T) {
	svc := &fakeService{beats: []screenplay.Beat{
		{ID: "B1", Scenes: screenplay.SceneList{{ID: "S1"}}},
		{ID: "B2", Scenes: screenplay.SceneList{}},
	}}
	s := New("test")
	if err := s.Refresh(context.Background(), svc); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := s.SceneCount("B2"); got != 0 {
		t.Fatalf("expected B2 empty pre-move, got %d", got)
	}

	// The service commits the move; the store only reflects the next fetch.
	svc.beats = []screenplay.Beat{
		{ID: "B1", Scenes: screenplay.SceneList{}},
		{ID: "B2", Scenes: screenplay.SceneList{{ID: "S1"}}},
	}
	if err := s.Refresh(context.Background(), svc); err != nil {
		t.Fatalf("refresh after move: %v", err)
	}

	owner, ok := s.FindSceneBeat("S1")
	if !ok || owner.ID != "B2" {
		t.Fatalf("expected S1 owned by B2 after refresh, got %q ok=%v", owner.ID, ok)
	}
	if got := s.SceneCount("B1"); got != 0 {
		t.Fatalf("expected B1 empty after refresh, got %d", got)
	}
}

func drain(s *Store) {
	for {
		select {
		case <-s.Events():
		default:
			return
		}
	}
}
