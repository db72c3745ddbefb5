package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/caret/internal/logging"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a configuration file when it changes on disk.
//
// The containing directory is watched rather than the file itself so
// that editors which save by rename are picked up.
type Watcher struct {
	path     string
	onChange func(*Config)
	debounce time.Duration
	logger   *logging.Logger

	fsw *fsnotify.Watcher

	mu      sync.Mutex
	timer   *time.Timer
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the logger used for reload failures.
func WithWatcherLogger(l *logging.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l.WithComponent("config")
		}
	}
}

// NewWatcher starts watching path. onChange receives every successfully
// loaded and validated configuration; invalid reloads are logged and
// skipped.
func NewWatcher(path string, onChange func(*Config), opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   logging.Discard(),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Pending reloads are discarded and a reload
// already in progress finishes before Close returns; onChange is never
// called afterwards.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.stopTimer()
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				w.schedule()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error: %v", err)
		}
	}
}

// schedule arms or re-arms the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.stopTimer()
	w.wg.Add(1)
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// stopTimer cancels a pending reload. Must be called with w.mu held.
func (w *Watcher) stopTimer() {
	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.timer = nil
}

func (w *Watcher) reload() {
	defer w.wg.Done()

	if w.isClosed() {
		return
	}

	cfg, err := Load(w.path)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			w.logger.Debug("config file %s removed, keeping current settings", w.path)
			return
		}
		w.logger.Warn("reload %s: %v", w.path, err)
		return
	}

	if w.isClosed() {
		return
	}
	w.logger.Info("reloaded %s", w.path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

func (w *Watcher) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}
