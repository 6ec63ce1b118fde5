package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the sketch watcher:
// - A write to a .ino file fires the callback after the debounce window
// - Non-sketch files never fire
// - Pause holds events; Resume flushes them
// - Stop is idempotent and safe before Start

type callbackRecorder struct {
	mu    sync.Mutex
	calls [][]string
	fired chan struct{}
}

func newCallbackRecorder() *callbackRecorder {
	return &callbackRecorder{fired: make(chan struct{}, 16)}
}

func (r *callbackRecorder) callback(files []string) {
	r.mu.Lock()
	r.calls = append(r.calls, files)
	r.mu.Unlock()
	r.fired <- struct{}{}
}

func (r *callbackRecorder) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *callbackRecorder) lastCall() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func waitForCallback(t *testing.T, r *callbackRecorder) {
	t.Helper()
	select {
	case <-r.fired:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher callback")
	}
}

func TestSketchWatcher_FiresOnInoWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sw, err := New([]string{dir}, 50*time.Millisecond)
	require.NoError(t, err)
	defer sw.Stop()

	rec := newCallbackRecorder()
	require.NoError(t, sw.Start(context.Background(), rec.callback))

	sketch := filepath.Join(dir, "blink.ino")
	require.NoError(t, os.WriteFile(sketch, []byte("void setup(){}\n"), 0o644))

	waitForCallback(t, rec)
	assert.Contains(t, rec.lastCall(), sketch)
}

func TestSketchWatcher_IgnoresOtherExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sw, err := New([]string{dir}, 50*time.Millisecond)
	require.NoError(t, err)
	defer sw.Stop()

	rec := newCallbackRecorder()
	require.NoError(t, sw.Start(context.Background(), rec.callback))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 0, rec.callCount())
}

func TestSketchWatcher_PauseHoldsResumesFlushes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sw, err := New([]string{dir}, 50*time.Millisecond)
	require.NoError(t, err)
	defer sw.Stop()

	rec := newCallbackRecorder()
	require.NoError(t, sw.Start(context.Background(), rec.callback))

	sw.Pause()

	sketch := filepath.Join(dir, "servo.ino")
	require.NoError(t, os.WriteFile(sketch, []byte("void setup(){}\n"), 0o644))

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 0, rec.callCount(), "paused watcher must not fire")

	sw.Resume()
	waitForCallback(t, rec)
	assert.Contains(t, rec.lastCall(), sketch)
}

func TestSketchWatcher_StopIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sw, err := New([]string{dir}, 0)
	require.NoError(t, err)

	require.NoError(t, sw.Stop())
	require.NoError(t, sw.Stop())
}
