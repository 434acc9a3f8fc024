package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		require.True(t, ok, "events channel closed early")
		return evt
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
	return Event{}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(10 * time.Millisecond)
	require.NoError(t, err)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	require.NoError(t, w.Watch(dir))
	assert.Equal(t, filepath.Clean(dir), w.Dir())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0o644))
	evt := waitEvent(t, w)
	assert.NoError(t, evt.Err)
	assert.Equal(t, filepath.Clean(dir), evt.Dir)
	assert.True(t, evt.Op.Has(fsnotify.Create))
}

func TestWatcherRetargets(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	w, err := NewWatcher(10 * time.Millisecond)
	require.NoError(t, err)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))
	require.NoError(t, w.Watch(second))
	assert.Equal(t, filepath.Clean(second), w.Dir())

	require.NoError(t, os.WriteFile(filepath.Join(second, "b.txt"), []byte("x"), 0o644))
	evt := waitEvent(t, w)
	assert.Equal(t, filepath.Clean(second), evt.Dir)
}

func TestWatchMissingDirectory(t *testing.T) {
	w, err := NewWatcher(0)
	require.NoError(t, err)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	err = w.Watch(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Empty(t, w.Dir())
}

func TestStopClosesEvents(t *testing.T) {
	w, err := NewWatcher(0)
	require.NoError(t, err)
	w.Stop()
	w.Wait()

	_, ok := <-w.Events()
	assert.False(t, ok)
	assert.ErrorIs(t, w.Watch(t.TempDir()), ErrStopped)
}
