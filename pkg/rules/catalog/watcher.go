package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"frostline/breeze/pkg/rules"
)

// Watcher reloads a catalog file when it changes on disk, so operators
// can edit the policy without restarting the service. Events are
// debounced to keep editor save storms from triggering repeated
// reloads.
//
// The parent directory is watched rather than the file itself: most
// editors replace files by rename, which would otherwise silently
// detach a file-level watch.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	timer   *time.Timer
	running bool
}

// NewWatcher creates a watcher for the catalog file at path.
// A non-positive debounce defaults to 200ms.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		logger:   logger,
		watcher:  fsw,
	}, nil
}

// Watch blocks until the context is cancelled, invoking onReload with
// the freshly loaded rule set after each (debounced) change to the
// catalog file. A file that fails to load keeps the previous rule set:
// the error is logged and onReload is not called.
func (w *Watcher) Watch(ctx context.Context, onReload func([]*rules.Rule) error) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %q: %w", filepath.Dir(w.path), err)
	}

	w.logger.Info("catalog watcher started",
		"path", w.path,
		"debounce_ms", w.debounce.Milliseconds(),
	)

	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("catalog watcher stopped")
			return w.watcher.Close()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("catalog file event",
				"path", event.Name,
				"op", event.Op.String(),
			)
			w.schedule(onReload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			// Keep watching despite transient errors.
			w.logger.Error("catalog watcher error", "error", err)
		}
	}
}

// relevant filters directory events down to writes of the catalog file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// schedule arms (or re-arms) the debounce timer for a reload.
func (w *Watcher) schedule(onReload func([]*rules.Rule) error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.reload(onReload)
	})
}

func (w *Watcher) reload(onReload func([]*rules.Rule) error) {
	ruleSet, err := Load(w.path)
	if err != nil {
		w.logger.Error("catalog reload failed, keeping previous rule set",
			"path", w.path,
			"error", err,
		)
		return
	}

	w.logger.Info("catalog reloaded",
		"path", w.path,
		"rule_count", len(ruleSet),
	)

	if err := onReload(ruleSet); err != nil {
		w.logger.Error("catalog reload callback failed", "error", err)
	}
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
