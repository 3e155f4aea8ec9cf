package favorites

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounceInterval = 500 * time.Millisecond

// Watcher reloads the store when another process rewrites the favorites
// file. Events are debounced so a burst of writes triggers one reload.
type Watcher struct {
	store    *Store
	watcher  *fsnotify.Watcher
	onReload func()
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// Watch starts watching the store's file directory. onReload (optional) runs
// after each reload, e.g. to repaint the UI.
func Watch(store *Store, onReload func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(store.Path())); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		store:    store,
		watcher:  fsWatcher,
		onReload: onReload,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go w.eventLoop()
	return w, nil
}

// Stop stops the watcher and waits for its loop to exit.
func (w *Watcher) Stop() {
	close(w.stopCh)
	_ = w.watcher.Close()
	<-w.doneCh
}

func (w *Watcher) eventLoop() {
	defer close(w.doneCh)

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time
	target := filepath.Base(w.store.Path())

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if debounceTimer == nil {
				debounceTimer = time.NewTimer(watchDebounceInterval)
			} else {
				debounceTimer.Stop()
				debounceTimer.Reset(watchDebounceInterval)
			}
			debounceCh = debounceTimer.C

		case <-debounceCh:
			debounceCh = nil
			w.store.Reload()
			if w.onReload != nil {
				w.onReload()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
