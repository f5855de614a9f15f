// Package watch re-runs a callback when attribute files change on disk.
//
// Editors often replace a file instead of writing it in place, so the
// watcher subscribes to each file's directory and filters events by name.
// Bursts of events are coalesced: the callback fires once the files have
// been quiet for the configured delay.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher observes a fixed set of files.
type Watcher struct {
	files  map[string]bool
	dirs   []string
	delay  time.Duration
	logger *log.Logger
}

// Option customizes a Watcher.
type Option func(*Watcher)

// WithDelay sets the quiet period before the callback fires.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) { w.delay = d }
}

// WithLogger routes watcher diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New prepares a watcher for paths. Nothing is subscribed until Run.
func New(paths []string, opts ...Option) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("watch: no files given")
	}
	w := &Watcher{
		files:  make(map[string]bool, len(paths)),
		delay:  DefaultDelay,
		logger: log.Default(),
	}
	seen := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		w.files[abs] = true
		if dir := filepath.Dir(abs); !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run blocks until ctx is done, calling onChange with the absolute path of
// the most recently changed file after each settled burst. Calls to
// onChange never overlap.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	var (
		mu      sync.Mutex
		running sync.Mutex
		last    string
	)
	deb := newDebouncer(w.delay)
	defer deb.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("file changed", "path", ev.Name, "op", ev.Op.String())
			mu.Lock()
			last = filepath.Clean(ev.Name)
			mu.Unlock()
			deb.schedule(func() {
				if ctx.Err() != nil {
					return
				}
				mu.Lock()
				path := last
				mu.Unlock()
				running.Lock()
				defer running.Unlock()
				onChange(path)
			})
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !w.files[filepath.Clean(ev.Name)] {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
