// Package watch reruns generation whenever the master splash or one of its
// platform overrides changes on disk.
package watch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"splashgen/internal/project"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors the folder holding the master splash.
type Watcher struct {
	Debounce time.Duration

	names   map[string]bool // Base names that trigger a run
	dir     string
	watcher *fsnotify.Watcher
}

// New returns a Watcher for master and its overrides for platforms.
func New(master string, platforms []string) (*Watcher, error) {
	names := map[string]bool{filepath.Base(master): true}
	for _, p := range platforms {
		names[filepath.Base(project.OverridePath(master, p))] = true
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	// Watch the folder, editors often replace the file instead of writing it.
	dir := filepath.Dir(master)
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch folder %s: %w", dir, err)
	}

	return &Watcher{
		Debounce: DefaultDebounce,
		names:    names,
		dir:      dir,
		watcher:  fsWatcher,
	}, nil
}

// Relevant reports whether an event on path should trigger a run.
func (w *Watcher) Relevant(path string) bool {
	return w.names[filepath.Base(path)]
}

// Run calls onChange after every settled burst of relevant events until ctx
// is done. Calls never overlap; events arriving during a call start another
// one afterwards.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context)) error {
	defer w.watcher.Close()
	log.Printf("Watching folder: %s", w.dir)

	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.Relevant(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Printf("File changed: %s", event.Name)
			timer.Reset(w.Debounce)

		case <-timer.C:
			onChange(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// Close stops watching without running.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
