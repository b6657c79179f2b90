package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
	"github.com/custodia-labs/triggercorpus/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.CorpusWatcher = (*Watcher)(nil)

// Watcher reports changes to the class directories of a corpus on local disk.
type Watcher struct {
	pattern string
}

// NewWatcher creates a new filesystem watcher.
// It accepts the same options as NewReader.
func NewWatcher(opts ...Option) *Watcher {
	r := NewReader(opts...)
	return &Watcher{pattern: r.pattern}
}

// Watch starts watching root/<split>/<class> for every split and class.
func (w *Watcher) Watch(ctx context.Context, root string) (<-chan domain.CorpusChange, error) {
	root = ResolvePath(root)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	for _, split := range domain.SplitOrder {
		for _, class := range domain.ClassOrder {
			dir := filepath.Join(root, split.String(), class.String())
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				watcher.Close()
				return nil, fmt.Errorf("watch %s: %w", dir, domain.ErrInputNotFound)
			}
			if err := watcher.Add(dir); err != nil {
				watcher.Close()
				return nil, fmt.Errorf("watch %s: %w: %v", dir, domain.ErrInputNotFound, err)
			}
		}
	}

	changes := make(chan domain.CorpusChange)
	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				change, ok := w.convert(event)
				if !ok {
					continue
				}
				select {
				case changes <- change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}

// convert maps an fsnotify event to a corpus change.
// Events for files that do not match the pattern are dropped, as are
// permission changes.
func (w *Watcher) convert(event fsnotify.Event) (domain.CorpusChange, bool) {
	if ok, _ := filepath.Match(w.pattern, filepath.Base(event.Name)); !ok {
		return domain.CorpusChange{}, false
	}

	var changeType domain.ChangeType
	switch {
	case event.Has(fsnotify.Create):
		changeType = domain.ChangeCreated
	case event.Has(fsnotify.Write):
		changeType = domain.ChangeUpdated
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		changeType = domain.ChangeDeleted
	default:
		return domain.CorpusChange{}, false
	}

	return domain.CorpusChange{Type: changeType, Path: event.Name}, true
}
