// Package watch monitors the calendar file for external changes.
// It drives the watch command: whenever another process rewrites the
// calendar, the registered callback runs again after a short debounce.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher watches a single calendar file and invokes a callback after
// changes settle.
type Watcher struct {
	mu sync.Mutex

	path          string
	debounceDelay time.Duration
	onChange      func()
	logger        zerolog.Logger

	debounce *time.Timer
}

// New creates a Watcher for the given file. onChange is called once at
// startup and again after every settled change to the file.
func New(path string, debounceDelay time.Duration, logger zerolog.Logger, onChange func()) *Watcher {
	if debounceDelay <= 0 {
		debounceDelay = 200 * time.Millisecond
	}
	return &Watcher{
		path:          path,
		debounceDelay: debounceDelay,
		onChange:      onChange,
		logger:        logger,
	}
}

// Run blocks watching the file until the context is cancelled.
// The parent directory is watched rather than the file itself, because
// atomic saves replace the file by rename and would otherwise drop the
// watch.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	name := filepath.Base(w.path)
	w.logger.Debug().Str("path", w.path).Msg("watching calendar file")

	// Render the initial state before the first event arrives.
	w.onChange()

	for {
		select {
		case <-ctx.Done():
			w.stopDebounce()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.logger.Debug().Str("op", event.Op.String()).Msg("calendar file changed")
			w.debounceChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("watcher error")
		}
	}
}

// debounceChange schedules the callback, collapsing bursts of events
// (editors often produce several per save) into one invocation.
func (w *Watcher) debounceChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, w.onChange)
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
}
