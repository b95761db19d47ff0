package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of fsnotify events editors emit on save.
const reloadDebounce = 250 * time.Millisecond

// ReloadFunc is notified with (new, old) after a successful reload.
type ReloadFunc func(newCfg, oldCfg *Config)

// ErrorFunc is notified when a reload fails; the previous config stays live.
type ErrorFunc func(err error)

// Watcher hot-reloads the configuration when any file in the config
// directory changes.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher

	mu       sync.RWMutex
	current  *Config
	onReload []ReloadFunc
	onError  []ErrorFunc

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWatcher creates a watcher over dir with the given initial config.
func NewWatcher(dir string, initial *Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{
		dir:     dir,
		watcher: fsw,
		current: initial,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Current returns the live configuration.
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnReload registers a callback invoked after each successful reload.
func (w *Watcher) OnReload(fn ReloadFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = append(w.onReload, fn)
}

// OnError registers a callback invoked when a reload fails.
func (w *Watcher) OnError(fn ErrorFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = append(w.onError, fn)
}

// Start begins watching until Stop is called or ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Stop stops the watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	<-w.doneCh
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Debug("Failed to close fsnotify watcher", "error", err)
		}
	}()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if filepath.Ext(ev.Name) != ".json" {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
				timerC = timer.C
			} else {
				timer.Reset(reloadDebounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Config watcher error", "error", err)
		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()
		}
	}
}

// reload loads the directory again; on failure the previous config is kept.
func (w *Watcher) reload() {
	newCfg, err := Load(w.dir)
	if err != nil {
		slog.Error("Config reload failed, keeping previous config", "dir", w.dir, "error", err)
		w.mu.RLock()
		handlers := append([]ErrorFunc(nil), w.onError...)
		w.mu.RUnlock()
		for _, fn := range handlers {
			fn(err)
		}
		return
	}

	w.mu.Lock()
	oldCfg := w.current
	w.current = newCfg
	handlers := append([]ReloadFunc(nil), w.onReload...)
	w.mu.Unlock()

	slog.Info("Configuration reloaded", "dir", w.dir)
	for _, fn := range handlers {
		fn(newCfg, oldCfg)
	}
}
