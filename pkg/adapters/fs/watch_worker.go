package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/hmm/pkg/core"
)

// debounceWindow coalesces the burst of events a single save produces.
const debounceWindow = 50 * time.Millisecond

type watchWorker struct {
	repo     *Repository
	dir      string
	pattern  string
	events   chan<- core.Event
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// Watch emits an event whenever the thoughts file is created, written,
// replaced or removed. The channel is closed once ctx is done.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Atomic saves swap the inode, so the directory is watched instead of the file.
	dir := filepath.Dir(r.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w: %w", dir, core.ErrIO, err)
	}

	events := make(chan core.Event)
	w := &watchWorker{
		repo:     r,
		dir:      dir,
		pattern:  "**/" + filepath.Base(r.Path),
		events:   events,
		watcher:  watcher,
		debounce: debounceWindow,
	}

	r.setWatcherActive(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(w.handleError))
	return events, nil
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) error {
	defer close(w.events)
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	var pending core.Event
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			e, matched := w.toEvent(event)
			if !matched {
				continue
			}
			pending = e
			fire = time.After(w.debounce)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleError(wErr)

		case <-fire:
			fire = nil
			select {
			case w.events <- pending:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// toEvent maps a filesystem notification to a store event, dropping anything
// that does not concern the thoughts file.
func (w *watchWorker) toEvent(event fsnotify.Event) (core.Event, bool) {
	rel, err := filepath.Rel(w.dir, event.Name)
	if err != nil {
		return core.Event{}, false
	}
	matched, err := doublestar.Match(w.pattern, filepath.ToSlash(rel))
	if err != nil || !matched {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case event.Has(fsnotify.Create):
		t = core.EventCreate
	case event.Has(fsnotify.Write):
		t = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		t = core.EventDelete
	default:
		return core.Event{}, false
	}

	w.repo.config.Logger.Debug("thoughts file changed", "op", event.Op.String(), "path", event.Name)
	return core.Event{Type: t, Path: event.Name, Timestamp: time.Now().Unix()}, true
}

func (w *watchWorker) handleError(err error) {
	w.repo.config.Logger.Error("watcher error", "error", err)
	if w.repo.config.ErrorHandler != nil {
		w.repo.config.ErrorHandler(err)
	}
}
