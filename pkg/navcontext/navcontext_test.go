package navcontext

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	b, err := NewBridge(filepath.Join(t.TempDir(), "context.json"))
	if err != nil {
		t.Fatalf("new bridge: %v", err)
	}
	c, err := b.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.Empty() {
		t.Fatalf("expected empty context, got %+v", c)
	}
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "context.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	b, _ := NewBridge(path)
	c, err := b.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.Empty() {
		t.Fatalf("corrupt context must read as empty, got %+v", c)
	}
}

func TestClearWritesClearedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "context.json")
	b, _ := NewBridge(path)

	if err := b.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read cleared file: %v", err)
	}
	var c Context
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("decode cleared file: %v", err)
	}
	if !c.Empty() {
		t.Fatalf("cleared document must name no beat/scene, got %+v", c)
	}
	if c.UpdatedAt.IsZero() {
		t.Fatalf("cleared document should carry a timestamp")
	}
}

func TestWatchEmitsOnEditorWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "context.json")
	b, _ := NewBridge(path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := b.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	doc, _ := json.Marshal(Context{BeatID: "B2", SceneID: "S7"})
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("write context: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case c := <-ch:
			if c.Empty() {
				continue // burst may deliver an intermediate read
			}
			if c.BeatID != "B2" || c.SceneID != "S7" {
				t.Fatalf("unexpected context %+v", c)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for context update")
		}
	}
}
