// Package watch re-runs an analysis whenever its input file changes. Each
// trigger is a complete, independent batch run over the whole file.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors one input file and invokes OnChange after each write,
// debounced so editors that write in bursts trigger a single run.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration

	// OnChange runs the analysis again. Errors are reported through OnError
	// and do not stop the watch loop.
	OnChange func(path string) error

	// OnError receives watch and re-run failures.
	OnError func(path string, err error)
}

// New creates a watcher for the given file.
func New(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the containing directory; fsnotify tracks renames and
	// recreations more reliably that way.
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("watching directory: %w", err)
	}

	return &Watcher{
		watcher:  fsWatcher,
		path:     absPath,
		debounce: 500 * time.Millisecond,
	}, nil
}

// Run blocks processing change events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			w.watcher.Close()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			absPath, err := filepath.Abs(event.Name)
			if err != nil || absPath != w.path {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if w.OnChange == nil {
					return
				}
				if err := w.OnChange(w.path); err != nil && w.OnError != nil {
					w.OnError(w.path, err)
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if w.OnError != nil {
				w.OnError(w.path, err)
			}
		}
	}
}
