package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// Watcher calls onChange after the config file is written or replaced.
// The parent directory is watched so editors that save by rename are seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(string)
	onError  func(error)

	mu       sync.Mutex
	debounce *time.Timer
	done     chan struct{}
}

func NewWatcher(path string, onChange func(string), onError func(error)) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  watcher,
		path:     absPath,
		onChange: onChange,
		onError:  onError,
		done:     make(chan struct{}),
	}

	go w.watch()
	return w, nil
}

func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.path {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}

		case <-w.done:
			return
		}
	}
}

// schedule coalesces bursts of events into one callback.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}

	w.debounce = time.AfterFunc(debounceDelay, func() {
		select {
		case <-w.done:
			return
		default:
		}
		if w.onChange != nil {
			w.onChange(w.path)
		}
	})
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	return w.watcher.Close()
}
