// Package watcher reloads the gizmo config file when it changes on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/philipparndt/orbitgizmo/internal/logging"
	"github.com/philipparndt/orbitgizmo/pkg/config"
)

// DefaultDebounce collapses the burst of events editors emit on save
const DefaultDebounce = 150 * time.Millisecond

// ConfigWatcher watches one config file and delivers every valid new version.
// The parent directory is watched rather than the file, so saves that replace
// the file (write to temp, rename) are seen too.
type ConfigWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func(config.Config)
	logger   logging.Logger

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
	done   chan struct{}
}

// NewConfigWatcher starts watching path. onChange runs on the watcher's
// goroutine; GUI hosts must hop back to their UI thread themselves.
func NewConfigWatcher(path string, debounce time.Duration, logger logging.Logger, onChange func(config.Config)) (*ConfigWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	cw := &ConfigWatcher{
		watcher:  w,
		path:     absPath,
		debounce: debounce,
		onChange: onChange,
		logger:   logging.OrNop(logger),
		done:     make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Path is the absolute path being watched
func (cw *ConfigWatcher) Path() string {
	return cw.path
}

func (cw *ConfigWatcher) run() {
	defer close(cw.done)
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				cw.schedule()
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Warnf("config watcher error: %v", err)
		}
	}
}

// schedule restarts the debounce timer
func (cw *ConfigWatcher) schedule() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.closed {
		return
	}
	if cw.timer != nil {
		cw.timer.Stop()
	}
	cw.timer = time.AfterFunc(cw.debounce, cw.reload)
}

func (cw *ConfigWatcher) reload() {
	cw.mu.Lock()
	closed := cw.closed
	cw.mu.Unlock()
	if closed {
		return
	}

	cfg, err := config.Load(cw.path)
	if err != nil {
		cw.logger.Warnf("keeping previous config: %v", err)
		return
	}
	cw.logger.Debugf("config reloaded from %s", cw.path)
	if cw.onChange != nil {
		cw.onChange(cfg)
	}
}

// Close stops watching. Pending reloads are dropped.
func (cw *ConfigWatcher) Close() error {
	cw.mu.Lock()
	if cw.closed {
		cw.mu.Unlock()
		return nil
	}
	cw.closed = true
	if cw.timer != nil {
		cw.timer.Stop()
	}
	cw.mu.Unlock()

	err := cw.watcher.Close()
	<-cw.done
	return err
}
