// Package watcher re-runs the ingest pipeline whenever the survey
// dataset file changes on disk, so reports always reflect the latest
// export without a manual reload.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval coalesces the burst of filesystem events a single
// spreadsheet export produces into one reload.
const debounceInterval = 500 * time.Millisecond

// Watcher watches one dataset file and invokes a reload callback after
// changes settle.
type Watcher struct {
	path     string
	onChange func() error
	fsw      *fsnotify.Watcher
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a Watcher for the dataset at path. onChange is called
// after each debounced change; its error is reported to stderr, not
// fatal, so one bad export does not stop watching.
func New(path string, onChange func() error) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("onChange cannot be nil")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return &Watcher{
		path:     abs,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. The watch is placed on the parent directory:
// editors and spreadsheet exports replace the file, which drops a watch
// placed on the file itself.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create filesystem watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.fsw = fsw
	w.wg.Add(1)
	go w.run()

	return nil
}

// run consumes filesystem events until stopped, debouncing changes to
// the dataset file.
func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.matches(ev) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounceInterval)
			timerC = timer.C

		case <-timerC:
			timer = nil
			timerC = nil
			if err := w.onChange(); err != nil {
				fmt.Fprintf(os.Stderr, "watcher: reload error: %v\n", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: %v\n", err)

		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// matches reports whether an event concerns the watched dataset file.
func (w *Watcher) matches(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(ev.Name) == w.path
}

// Stop halts the watcher and waits for the event loop to exit. Safe to
// call more than once.
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		if w.fsw != nil {
			w.fsw.Close()
		}
		w.wg.Wait()
	})
	return nil
}
