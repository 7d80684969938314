// Package watcher observes a sample-document directory and reports file
// changes so the index can follow edits without manual re-runs.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// ChangeType classifies a filesystem change.
type ChangeType string

// Change types.
const (
	ChangeCreated ChangeType = "created"
	ChangeUpdated ChangeType = "updated"
	ChangeDeleted ChangeType = "deleted"
)

// Change is one relevant filesystem event under the watched directory.
type Change struct {
	Type ChangeType
	Path string
}

// Watcher emits Change events for supported files in a single directory
// (non-recursive, matching the indexer's directory semantics).
type Watcher struct {
	dir      string
	supports func(path string) bool
	fs       *fsnotify.Watcher
}

// New creates a watcher for dir. The supports predicate filters events
// to files the extractor registry can handle; a nil predicate accepts
// every non-hidden file.
func New(dir string, supports func(path string) bool) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch target %s is not a directory", dir)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	return &Watcher{dir: dir, supports: supports, fs: fs}, nil
}

// Watch returns a channel of changes. The channel is closed when ctx is
// cancelled or the underlying watcher shuts down.
func (w *Watcher) Watch(ctx context.Context) <-chan Change {
	changes := make(chan Change)

	go func() {
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				change := w.handleEvent(event)
				if change == nil {
					continue
				}
				select {
				case changes <- *change:
				case <-ctx.Done():
					return
				}
			case _, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				// Watch errors are transient; keep the loop alive.
			}
		}
	}()

	return changes
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// handleEvent maps an fsnotify event to a Change, or nil when the event
// is irrelevant (directories, hidden files, unsupported formats, chmod).
func (w *Watcher) handleEvent(event fsnotify.Event) *Change {
	if isHidden(event.Name) {
		return nil
	}

	switch {
	case event.Op.Has(fsnotify.Create):
		if !w.isWatchableFile(event.Name) {
			return nil
		}
		return &Change{Type: ChangeCreated, Path: event.Name}
	case event.Op.Has(fsnotify.Write):
		if !w.isWatchableFile(event.Name) {
			return nil
		}
		return &Change{Type: ChangeUpdated, Path: event.Name}
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		// The file is already gone; filter on the name alone.
		if w.supports != nil && !w.supports(event.Name) {
			return nil
		}
		return &Change{Type: ChangeDeleted, Path: event.Name}
	}
	return nil
}

// isWatchableFile reports whether path is an existing regular file the
// extractor can handle.
func (w *Watcher) isWatchableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if w.supports != nil && !w.supports(path) {
		return false
	}
	return true
}

// isHidden reports whether any element of path starts with a dot.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if len(part) > 1 && strings.HasPrefix(part, ".") && part != ".." {
			return true
		}
	}
	return false
}
