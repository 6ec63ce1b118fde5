// Package watcher re-analyzes sketches as they change on disk. Events are
// debounced so a burst of editor writes produces one callback with the set
// of changed files.
package watcher

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before the
// callback fires.
const DefaultDebounce = 500 * time.Millisecond

// sketchExtensions are the file extensions worth re-analyzing.
var sketchExtensions = map[string]bool{".ino": true, ".pde": true}

// SketchWatcher watches directories recursively for sketch file changes.
type SketchWatcher interface {
	// Start begins watching; callback receives the debounced set of
	// changed sketch paths. Must be called at most once.
	Start(ctx context.Context, callback func(files []string)) error
	// Stop shuts the watcher down. Idempotent.
	Stop() error
	// Pause keeps accumulating changes without firing callbacks.
	Pause()
	// Resume re-enables callbacks, firing immediately if changes piled up
	// while paused.
	Resume()
}

type sketchWatcher struct {
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
	callback     func(files []string)

	ctx    context.Context
	cancel context.CancelFunc

	paused   bool
	pausedMu sync.RWMutex

	changed   map[string]bool
	changedMu sync.Mutex

	debounceTimer *time.Timer
	timerMu       sync.Mutex

	stopOnce sync.Once
	doneCh   chan struct{}
}

// New creates a watcher over the given directories (recursively). Debounce
// <= 0 means DefaultDebounce.
func New(dirs []string, debounce time.Duration) (SketchWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	sw := &sketchWatcher{
		watcher:      fsWatcher,
		debounceTime: debounce,
		changed:      make(map[string]bool),
		doneCh:       make(chan struct{}),
	}

	for _, dir := range dirs {
		if err := sw.addDirectoriesRecursively(dir); err != nil {
			fsWatcher.Close()
			return nil, err
		}
	}

	return sw, nil
}

func (sw *sketchWatcher) Start(ctx context.Context, callback func(files []string)) error {
	if callback == nil {
		return nil
	}

	sw.callback = callback
	sw.ctx, sw.cancel = context.WithCancel(ctx)

	go sw.watch()
	return nil
}

func (sw *sketchWatcher) Stop() error {
	var err error
	sw.stopOnce.Do(func() {
		if sw.cancel != nil {
			sw.cancel()
			<-sw.doneCh
		} else {
			close(sw.doneCh)
		}
		err = sw.watcher.Close()
	})
	return err
}

func (sw *sketchWatcher) Pause() {
	sw.pausedMu.Lock()
	defer sw.pausedMu.Unlock()
	sw.paused = true
}

func (sw *sketchWatcher) Resume() {
	sw.pausedMu.Lock()
	wasPaused := sw.paused
	sw.paused = false
	sw.pausedMu.Unlock()

	if !wasPaused {
		return
	}

	files := sw.drainChanged()
	if len(files) > 0 && sw.callback != nil {
		sw.callback(files)
	}
}

func (sw *sketchWatcher) watch() {
	defer close(sw.doneCh)

	fireCh := make(chan struct{}, 1)

	for {
		select {
		case <-sw.ctx.Done():
			sw.stopDebounceTimer()
			return

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}

			// New directories join the watch set so nested sketches
			// created later are still seen.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := sw.addDirectoriesRecursively(event.Name); err != nil {
						log.Printf("Warning: failed to watch new directory %s: %v", event.Name, err)
					}
				}
			}

			if !sw.isSketchEvent(event) {
				continue
			}

			sw.changedMu.Lock()
			sw.changed[event.Name] = true
			sw.changedMu.Unlock()

			sw.resetDebounceTimer(fireCh)

		case <-fireCh:
			sw.handleDebounceExpired()

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Sketch watcher error: %v", err)
		}
	}
}

func (sw *sketchWatcher) handleDebounceExpired() {
	sw.pausedMu.RLock()
	paused := sw.paused
	sw.pausedMu.RUnlock()
	if paused {
		return
	}

	files := sw.drainChanged()
	if len(files) > 0 && sw.callback != nil {
		sw.callback(files)
	}
}

func (sw *sketchWatcher) drainChanged() []string {
	sw.changedMu.Lock()
	defer sw.changedMu.Unlock()

	if len(sw.changed) == 0 {
		return nil
	}
	files := make([]string, 0, len(sw.changed))
	for file := range sw.changed {
		files = append(files, file)
	}
	sw.changed = make(map[string]bool)
	return files
}

func (sw *sketchWatcher) resetDebounceTimer(fireCh chan struct{}) {
	sw.timerMu.Lock()
	defer sw.timerMu.Unlock()

	if sw.debounceTimer != nil {
		if !sw.debounceTimer.Stop() {
			select {
			case <-sw.debounceTimer.C:
			default:
			}
		}
	}

	sw.debounceTimer = time.AfterFunc(sw.debounceTime, func() {
		select {
		case fireCh <- struct{}{}:
		default:
		}
	})
}

func (sw *sketchWatcher) stopDebounceTimer() {
	sw.timerMu.Lock()
	defer sw.timerMu.Unlock()

	if sw.debounceTimer != nil {
		sw.debounceTimer.Stop()
		sw.debounceTimer = nil
	}
}

func (sw *sketchWatcher) isSketchEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
		return false
	}
	return sketchExtensions[filepath.Ext(event.Name)]
}

func (sw *sketchWatcher) addDirectoriesRecursively(rootPath string) error {
	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == rootPath {
				return err
			}
			log.Printf("Warning: error accessing %s: %v", path, err)
			return nil
		}
		if !info.IsDir() {
			return nil
		}

		// Build output and VCS metadata churn constantly; skip them.
		base := filepath.Base(path)
		if base == ".git" || base == "build" || base == ".pio" {
			return filepath.SkipDir
		}

		if err := sw.watcher.Add(path); err != nil {
			log.Printf("Warning: failed to watch directory %s: %v", path, err)
		}
		return nil
	})
}
