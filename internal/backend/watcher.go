package backend

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/menuctl/internal/logging/events"
	"github.com/fsnotify/fsnotify"
)

var ErrStopped = errors.New("backend: watcher stopped")

// Event reports that the watched directory changed, or that the underlying
// notifier failed.
type Event struct {
	Dir string
	Op  fsnotify.Op
	Err error
}

// Watcher follows a single directory, the one the file browser currently
// shows, and publishes coalesced change events.
type Watcher struct {
	fs       *fsnotify.Watcher
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	mu  sync.Mutex
	dir string

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts a watcher that emits at most one event per interval.
func NewWatcher(interval time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		fs:       fsw,
		throttle: newThrottle(interval),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Events returns a channel of backend events. It is closed once the watcher
// has stopped.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Watch retargets the watcher at dir. Watching the current directory again
// is a no-op.
func (w *Watcher) Watch(dir string) error {
	if w.ctx.Err() != nil {
		return ErrStopped
	}
	dir = filepath.Clean(dir)

	w.mu.Lock()
	defer w.mu.Unlock()
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		_ = w.fs.Remove(w.dir)
	}
	w.dir = ""
	if err := w.fs.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.dir = dir
	events.Backend.Watch(dir)
	return nil
}

// Dir returns the directory being watched, empty when none is.
func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the event loop has exited and the events channel is
// closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer w.fs.Close()

	for {
		select {
		case <-w.ctx.Done():
			return
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if evt.Op == fsnotify.Chmod {
				continue
			}
			op, ok := w.throttle.coalesce(w.ctx, evt.Op, w.fs.Events)
			if !ok {
				return
			}
			dir := w.Dir()
			events.Backend.Change(dir, op.String())
			if !w.emit(Event{Dir: dir, Op: op}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			events.Backend.Error(err)
			if !w.emit(Event{Dir: w.Dir(), Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
