package toast

import (
	"strings"
	"testing"

	"github.com/scriptloft/beatboard/pkg/tui/events"
	"github.com/scriptloft/beatboard/pkg/tui/theme"
)

func TestPushAndExpire(t *testing.T) {
	m := NewModel(theme.Default())
	if cmd := m.Push(events.ToastSuccess, "scene moved"); cmd == nil {
		t.Fatalf("expected scheduled expiry command")
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 toast, got %d", m.Len())
	}
	if !strings.Contains(m.View(), "scene moved") {
		t.Fatalf("expected toast text in view")
	}

	m.Update(ExpireMsg{Generation: 1})
	if m.Len() != 0 {
		t.Fatalf("expected toast expired, got %d", m.Len())
	}
}

func TestExpiryOnlyRemovesItsOwnToast(t *testing.T) {
	m := NewModel(theme.Default())
	m.Push(events.ToastError, "move rejected")
	m.Push(events.ToastInfo, "refreshing")

	m.Update(ExpireMsg{Generation: 1})
	if m.Len() != 1 {
		t.Fatalf("expected one toast left, got %d", m.Len())
	}
	if !strings.Contains(m.View(), "refreshing") {
		t.Fatalf("wrong toast removed:\n%s", m.View())
	}

	// A stale expiry for the removed toast must be a no-op.
	m.Update(ExpireMsg{Generation: 1})
	if m.Len() != 1 {
		t.Fatalf("stale expiry must not remove live toasts")
	}
}

func TestEmptyPushIgnored(t *testing.T) {
	m := NewModel(theme.Default())
	if cmd := m.Push(events.ToastInfo, ""); cmd != nil {
		t.Fatalf("empty toast must not schedule expiry")
	}
	if m.Len() != 0 {
		t.Fatalf("empty toast must not be kept")
	}
}
