package backend

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// throttle folds bursts of notifications into one operation mask, emitting
// at most once per interval. Only the watcher loop uses it.
type throttle struct {
	interval time.Duration
	next     time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval < 0 {
		interval = 0
	}
	return &throttle{interval: interval}
}

// coalesce waits out the rest of the current interval, then merges every
// notification queued on pending into op. Chmod is ignored. It returns false
// when ctx ends or pending is closed while waiting.
func (t *throttle) coalesce(ctx context.Context, op fsnotify.Op, pending <-chan fsnotify.Event) (fsnotify.Op, bool) {
	if t != nil && t.interval > 0 {
		if wait := time.Until(t.next); wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return op, false
			case <-timer.C:
			}
		}
		t.next = time.Now().Add(t.interval)
	}
	for {
		select {
		case evt, ok := <-pending:
			if !ok {
				return op, false
			}
			if evt.Op != fsnotify.Chmod {
				op |= evt.Op
			}
		default:
			return op, true
		}
	}
}
