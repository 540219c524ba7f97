package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports changes to one config file. Changed is signalled from a
// background goroutine; the game loop should drain it and call LoadOverrides
// itself so globals are only written from one goroutine.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Changed chan struct{}
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch watches the directory containing path, since editors often replace
// files by renaming.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(path),
		Changed: make(chan struct{}, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll reports whether the file changed since the last call. It never blocks.
func (w *Watcher) Poll() bool {
	select {
	case <-w.Changed:
		return true
	default:
		return false
	}
}

func (w *Watcher) signal() {
	select {
	case w.Changed <- struct{}{}:
	default:
	}
}

// run coalesces bursts of events into one signal, sent once the file has
// been quiet for the debounce interval.
func (w *Watcher) run() {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
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
			if timer == nil {
				timer = time.AfterFunc(debounce, w.signal)
			} else {
				timer.Reset(debounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
