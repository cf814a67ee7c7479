// Package watch reports changes under the content directory.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for a burst of events to settle
const DefaultDebounce = 250 * time.Millisecond

// Change is a debounced batch of modified content paths
type Change struct {
	Paths []string
	At    time.Time
}

// Watcher monitors a content tree recursively using fsnotify
type Watcher struct {
	root      string
	debounce  time.Duration
	logger    *zap.Logger
	fsWatcher *fsnotify.Watcher
	changes   chan Change
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce sets the settle time
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the watcher logger
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// New creates a watcher over root and every non-hidden directory below it
func New(root string, opts ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		root:      root,
		debounce:  DefaultDebounce,
		logger:    zap.NewNop(),
		fsWatcher: fsWatcher,
		changes:   make(chan Change, 1),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.addTree(root); err != nil {
		fsWatcher.Close()
		return nil, err
	}
	return w, nil
}

// Changes delivers debounced change batches. It is closed when Run returns.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Directories returns the watched directories
func (w *Watcher) Directories() []string {
	dirs := w.fsWatcher.WatchList()
	slices.Sort(dirs)
	return dirs
}

// addTree adds a directory and its non-hidden subdirectories
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return fmt.Errorf("failed to add directory %s to watcher: %w", path, err)
		}
		w.logger.Debug("watching directory", zap.String("directory", path))
		return nil
	})
}

// Run processes events until ctx is done
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.changes)
	defer w.fsWatcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			pending[event.Name] = true
			timer.Reset(w.debounce)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("fsnotify watcher error", zap.Error(err))

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			change := Change{At: time.Now()}
			for p := range pending {
				change.Paths = append(change.Paths, p)
			}
			slices.Sort(change.Paths)
			clear(pending)

			select {
			case w.changes <- change:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// relevant reports whether an event touches content. New directories are
// added to the watch list and count as a change.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn("cannot watch new directory", zap.String("directory", event.Name), zap.Error(err))
			}
			return true
		}
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		// removed directories disappear from the watch list by themselves
		return isContentFile(name) || filepath.Ext(name) == ""
	}

	return isContentFile(name)
}

func isContentFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".mdx"
}
