package feed

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 250 * time.Millisecond

// Watcher observes the workspace store directory and purges the view
// cache when another session writes to the database. Changes are
// debounced: sqlite WAL checkpoints emit bursts of events for a single
// logical write.
type Watcher struct {
	fsw     *fsnotify.Watcher
	service *Service
	changes chan struct{}
}

// NewWatcher creates a watcher over the directory containing dbPath.
func NewWatcher(service *Service, dbPath string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(dbPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{
		fsw:     fsw,
		service: service,
		changes: make(chan struct{}, 1),
	}, nil
}

// Changes signals after the cache has been purged for an external write.
// The channel is coalescing: a burst of writes produces one signal.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Start runs the watch loop until ctx is done.
func (w *Watcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !isStoreFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerC = timer.C
			} else {
				timer.Reset(watchDebounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			w.service.PurgeCache()
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func isStoreFile(name string) bool {
	base := filepath.Base(name)
	return base == "fbl.db" || strings.HasPrefix(base, "fbl.db-")
}
