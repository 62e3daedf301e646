package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a single configuration file. The parent
// directory is watched because editors often replace files by rename.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	mu       sync.Mutex
	pending  *time.Timer
	stopped  bool
	logger   *logrus.Entry
	onChange func(path string)
}

// NewWatcher watches path and calls onChange once the file has been quiet
// for debounce after a write or re-creation, so a truncate followed by a
// write is reported after the write. Zero debounce uses 100ms.
func NewWatcher(path string, debounce time.Duration, logger *logrus.Entry, onChange func(string)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: debounce,
		logger:   logger,
		onChange: onChange,
	}, nil
}

// Start processes events until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.handleChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.Close()
			return
		}
	}
}

// handleChange restarts the quiet period; onChange runs when it expires.
func (w *Watcher) handleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.pending != nil && w.pending.Stop() {
		w.logger.Debugf("Debounced: %s", filepath.Base(w.path))
	}
	w.pending = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()
	if stopped {
		return
	}

	w.logger.Infof("Config changed: %s", filepath.Base(w.path))
	if w.onChange != nil {
		w.onChange(w.path)
	}
}

// stop cancels a pending callback and ignores later events.
func (w *Watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
	if w.pending != nil {
		w.pending.Stop()
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.stop()
	return w.watcher.Close()
}
