// Package watcher notifies the application when the job data file is
// changed by another program.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"job-mapper/internal/logger"
)

const DefaultDebounce = 250 * time.Millisecond

// Option configures the FileWatcher.
type Option func(*FileWatcher)

// WithDebounce sets how long the file must stay quiet before onChange runs.
func WithDebounce(d time.Duration) Option {
	return func(w *FileWatcher) {
		w.debounce = d
	}
}

func WithLogger(log logger.Logger) Option {
	return func(w *FileWatcher) {
		w.logger = log
	}
}

// FileWatcher watches a single file. It watches the parent directory so
// that atomic replace-by-rename is seen as well as in-place writes.
type FileWatcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	dir       string
	name      string
	onChange  func()
	debounce  time.Duration
	logger    logger.Logger

	mu       sync.Mutex
	timer    *time.Timer
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// New creates a watcher for path. onChange is called from a background
// goroutine after each burst of changes.
func New(path string, onChange func(), opts ...Option) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &FileWatcher{
		fsWatcher: fsw,
		path:      abs,
		dir:       filepath.Dir(abs),
		name:      filepath.Base(abs),
		onChange:  onChange,
		debounce:  DefaultDebounce,
		logger:    logger.NoOpLogger{},
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

func (w *FileWatcher) Path() string {
	return w.path
}

// Start begins watching. It returns once the watch is registered.
func (w *FileWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	if err := w.fsWatcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	w.logger.Info("FileWatcher", "watching data file", map[string]interface{}{
		"path": w.path,
	})

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and cancels any pending notification.
func (w *FileWatcher) Stop() error {
	var stopErr error
	w.stopOnce.Do(func() {
		w.mu.Lock()
		running := w.running
		w.running = false
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()

		close(w.stopCh)
		if running {
			<-w.doneCh
		}
		stopErr = w.fsWatcher.Close()
	})
	return stopErr
}

// Shutdown satisfies shutdown.Shutdownable.
func (w *FileWatcher) Shutdown() {
	if err := w.Stop(); err != nil {
		w.logger.Error("FileWatcher", err, nil)
	}
}

func (w *FileWatcher) processEvents(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("FileWatcher", err, map[string]interface{}{
				"path": w.path,
			})
		}
	}
}

func (w *FileWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != w.name {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	w.logger.Debug("FileWatcher", "data file event", map[string]interface{}{
		"op": event.Op.String(),
	})
	w.schedule()
}

func (w *FileWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *FileWatcher) fire() {
	w.mu.Lock()
	running := w.running
	w.mu.Unlock()

	if running && w.onChange != nil {
		w.onChange()
	}
}
