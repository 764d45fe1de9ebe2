package navcontext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch streams context updates until ctx is cancelled. The parent directory
// is watched rather than the file itself so atomic rename-into-place writes
// from the editor are observed. The channel is closed once ctx is done or the
// watcher encounters an unrecoverable error.
func (b *Bridge) Watch(ctx context.Context) (<-chan Context, error) {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("navcontext: ensure context dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("navcontext: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("navcontext: watch %s: %w", dir, err)
	}

	updates := make(chan Context, 8)

	go func() {
		defer close(updates)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "navcontext: watcher close: %v\n", err)
			}
		}()

		send := func(c Context) {
			select {
			case updates <- c:
			default:
				// Drop when the consumer is not ready; the latest file state
				// is re-read on the next event anyway.
			}
		}

		throttle := newReadThrottle(75*time.Millisecond, func() {
			c, err := b.Load()
			if err != nil {
				return
			}
			send(c)
		})
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Re-read on watcher errors to stay in sync even when the
				// change cannot be classified.
				throttle.Kick()
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != b.path {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				throttle.Kick()
			}
		}
	}()

	return updates, nil
}

// readThrottle coalesces rapid file events so the board re-reads the context
// once per burst of editor activity instead of on every single write.
type readThrottle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
	fire  func()
}

func newReadThrottle(delay time.Duration, fire func()) *readThrottle {
	return &readThrottle{delay: delay, fire: fire}
}

func (t *readThrottle) Kick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		t.timer = nil
		t.mu.Unlock()
		t.fire()
	})
}

func (t *readThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
