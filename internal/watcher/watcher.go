// Package watcher re-runs extraction when the input declaration document
// changes on disk. Producers typically replace the document wholesale
// (write to a temp file, then rename), so the watcher observes the parent
// directory and filters events down to the document's name, debouncing
// bursts into a single callback.
package watcher

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last relevant event before
// the change callback fires.
const DefaultDebounce = 500 * time.Millisecond

// DocumentWatcher watches one declaration document for changes.
type DocumentWatcher struct {
	path         string // absolute path of the watched document
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
	onChange     func(ctx context.Context)
	stopCh       chan struct{}
	doneCh       chan struct{}
	stopOnce     sync.Once
}

// New creates a watcher for the document at path. onChange runs on the
// watcher goroutine after each debounced burst of changes.
func New(path string, onChange func(ctx context.Context)) (*DocumentWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: rename-over-replace drops the
	// watch on the old inode if the file itself is watched.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	return &DocumentWatcher{
		path:         abs,
		watcher:      watcher,
		debounceTime: DefaultDebounce,
		onChange:     onChange,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}, nil
}

// Start begins watching for document changes.
func (dw *DocumentWatcher) Start(ctx context.Context) {
	go dw.watch(ctx)
}

// Stop stops the watcher and waits for the event loop to exit.
func (dw *DocumentWatcher) Stop() {
	dw.stopOnce.Do(func() {
		close(dw.stopCh)
		<-dw.doneCh
		dw.watcher.Close()
	})
}

// watch is the main event loop with debouncing logic.
func (dw *DocumentWatcher) watch(ctx context.Context) {
	defer close(dw.doneCh)

	var debounceTimer *time.Timer
	changedCh := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case <-dw.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if !dw.shouldProcessEvent(event) {
				continue
			}

			// Reset debounce timer - properly stop and drain.
			if debounceTimer != nil {
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
			}
			debounceTimer = time.AfterFunc(dw.debounceTime, func() {
				select {
				case changedCh <- struct{}{}:
				default:
				}
			})

		case <-changedCh:
			log.Printf("Document changed, re-extracting %s...", filepath.Base(dw.path))
			start := time.Now()
			dw.onChange(ctx)
			log.Printf("Re-extraction complete in %v", time.Since(start))

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Document watcher error: %v", err)
		}
	}
}

// shouldProcessEvent keeps only write/create/rename events on the watched
// document itself.
func (dw *DocumentWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == dw.path
}
