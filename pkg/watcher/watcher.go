package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single model file and triggers a callback
// whenever it changes. Editors and CAD exporters often replace the
// file instead of writing in place, so create events count as changes
// and the watch is placed on the containing directory.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	callback func()
	debounce time.Duration
	timer    *time.Timer
}

// New creates a watcher for the given file with the given debounce window
func New(file string, debounce time.Duration, callback func()) (*FileWatcher, error) {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &FileWatcher{
		watcher:  watcher,
		path:     absPath,
		callback: callback,
		debounce: debounce,
	}, nil
}

// Start begins watching for file changes
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}

				if event.Name != fw.path {
					continue
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					fw.handleFileChange()
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
			}
		}
	}()
}

// handleFileChange debounces bursts of change events into one callback
func (fw *FileWatcher) handleFileChange() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, fw.callback)
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
