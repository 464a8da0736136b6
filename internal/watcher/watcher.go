// Package watcher re-triggers the sync when the media index changes on disk.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a burst of writes triggers a sync.
const DefaultDebounce = 2 * time.Second

// Trigger requests a sync run.
type Trigger interface {
	CheckForUpdates() bool
}

// IndexWatcher watches the index file and its SQLite companions.
type IndexWatcher struct {
	dir      string
	names    map[string]struct{}
	debounce time.Duration
	trigger  Trigger
	logger   *slog.Logger
}

// New creates a watcher for the index at indexPath. A non-positive debounce
// uses DefaultDebounce.
func New(indexPath string, debounce time.Duration, trigger Trigger) (*IndexWatcher, error) {
	abs, err := filepath.Abs(indexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve index path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	base := filepath.Base(abs)
	return &IndexWatcher{
		dir: filepath.Dir(abs),
		names: map[string]struct{}{
			base:              {},
			base + "-wal":     {},
			base + "-journal": {},
		},
		debounce: debounce,
		trigger:  trigger,
		logger:   slog.Default(),
	}, nil
}

// WithLogger sets the logger.
func (w *IndexWatcher) WithLogger(logger *slog.Logger) *IndexWatcher {
	w.logger = logger
	return w
}

// Run watches until ctx is cancelled.
func (w *IndexWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer func() {
		_ = fw.Close()
	}()

	// The directory is watched so the index can be replaced atomically.
	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch index directory %s: %w", w.dir, err)
	}
	w.logger.InfoContext(ctx, "watching media index", "dir", w.dir, "debounce", w.debounce)

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.DebugContext(ctx, "index changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case <-timer.C:
			if w.trigger.CheckForUpdates() {
				w.logger.InfoContext(ctx, "index change triggered sync")
			} else {
				w.logger.DebugContext(ctx, "sync already running, change folded in")
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnContext(ctx, "index watcher error", "error", err)
		}
	}
}

func (w *IndexWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	_, ok := w.names[filepath.Base(event.Name)]
	return ok
}
