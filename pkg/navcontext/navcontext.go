// Package navcontext bridges the shared navigation context written by the
// companion scene editor into the board. The context file is owned by the
// editor; the board reads and watches it, and its only write is the explicit
// cleared form.
package navcontext

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Context is the "currently active beat/scene" document the editor records.
type Context struct {
	BeatID    string    `json:"beat_id,omitempty"`
	SceneID   string    `json:"scene_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Empty reports whether the context names nothing.
func (c Context) Empty() bool {
	return c.BeatID == "" && c.SceneID == ""
}

// Bridge reads, watches, and (narrowly) clears the shared context file.
type Bridge struct {
	path string
}

// NewBridge validates the configured context file location.
func NewBridge(path string) (*Bridge, error) {
	if path == "" {
		return nil, errors.New("navcontext: context path not configured")
	}
	return &Bridge{path: filepath.Clean(path)}, nil
}

// Path returns the watched file location.
func (b *Bridge) Path() string {
	return b.path
}

// Load reads the current context. A missing file reads as an empty context.
func (b *Bridge) Load() (Context, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Context{}, nil
		}
		return Context{}, fmt.Errorf("navcontext: read %s: %w", b.path, err)
	}
	var ctx Context
	if err := json.Unmarshal(data, &ctx); err != nil {
		// A half-written or corrupt file reads as empty rather than failing
		// the board; the next editor write replaces it.
		return Context{}, nil
	}
	return ctx, nil
}

// Clear writes the cleared document back. This is the bridge's only write
// capability; the board never records its own state here.
func (b *Bridge) Clear() error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("navcontext: ensure context dir: %w", err)
	}
	data, err := json.Marshal(Context{UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("navcontext: encode cleared context: %w", err)
	}
	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return fmt.Errorf("navcontext: write %s: %w", b.path, err)
	}
	return nil
}
