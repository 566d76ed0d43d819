// Package watch triggers rebuilds when the model document changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/emap-labs/emap-cli/internal/core/ports/driving"
	"github.com/emap-labs/emap-cli/internal/logger"
)

// defaultDebounce coalesces the bursts of writes editors and generators
// produce when saving a file.
const defaultDebounce = 250 * time.Millisecond

// Watcher observes one model file and invokes the rebuild service after
// changes settle. A failed rebuild (for instance a half-written or malformed
// document) is logged and the previous artifact set stays live; the next
// change triggers another attempt.
type Watcher struct {
	path     string
	rebuild  driving.RebuildService
	debounce time.Duration
}

// NewWatcher creates a watcher for the given model file path.
func NewWatcher(path string, rebuild driving.RebuildService) *Watcher {
	return &Watcher{path: path, rebuild: rebuild, debounce: defaultDebounce}
}

// SetDebounce overrides the settle interval. Useful for tests.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run blocks, rebuilding on changes, until the context is cancelled.
// The parent directory is watched rather than the file itself so that
// editors replacing the file via rename are still observed.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	logger.Info("Watching %s for changes", w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			logger.Debug("Change detected: %s (%s)", ev.Name, ev.Op)
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			if _, err := w.rebuild.Rebuild(ctx); err != nil {
				logger.Warn("Rebuild after change failed, keeping previous artifacts: %v", err)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// relevant reports whether a filesystem event concerns the model file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}
