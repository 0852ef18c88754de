package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher reloads a tuning file whenever it changes on disk. Parsed
// overlays arrive on Updates; the consumer decides when to Apply them.
type TuningWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	Updates  chan Tuning
	Errors   chan error
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// WatchTuning starts watching path. The parent directory is watched so
// editors that replace the file by rename are picked up.
func WatchTuning(path string, base Tuning) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher:  w,
		path:     abs,
		debounce: 100 * time.Millisecond,
		Updates:  make(chan Tuning, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go tw.run(base)
	return tw, nil
}

// Close stops the watcher and closes its channels.
func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

// run reloads once events for the file have been quiet for the debounce
// window, so a burst of writes yields one overlay of the final content.
func (w *TuningWatcher) run(base Tuning) {
	defer close(w.done)

	settled := make(chan struct{}, 1)
	timer := time.AfterFunc(time.Hour, func() {
		select {
		case settled <- struct{}{}:
		default:
		}
	})
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(w.debounce)
		case <-settled:
			w.reload(base)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *TuningWatcher) reload(base Tuning) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.send(nil, err)
		return
	}
	t, err := ParseTuning(data, base)
	if err != nil {
		w.send(nil, err)
		return
	}
	w.send(&t, nil)
}

// send never blocks the watch loop; a newer overlay replaces an unread one.
func (w *TuningWatcher) send(t *Tuning, err error) {
	if err != nil {
		select {
		case w.Errors <- err:
		default:
		}
		return
	}
	for {
		select {
		case w.Updates <- *t:
			return
		default:
		}
		select {
		case <-w.Updates:
		default:
		}
	}
}
