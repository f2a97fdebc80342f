// Package watch reports changes to a fixed set of shader files.
package watch

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/richinsley/glreflect/logging"
)

// DefaultSettle is how long a file must be quiet before its change is
// reported. Editors often write a file in several steps.
const DefaultSettle = 100 * time.Millisecond

// Watcher delivers the path of each watched file that was created or
// written. Paths are reported as they were passed to New.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	// cleaned absolute path -> caller's path
	files  map[string]string
	settle time.Duration

	events chan string
	errors chan error
	done   chan struct{}
	once   sync.Once
}

// New watches files. Their directories are watched rather than the files
// themselves so that rename-over-save still produces events.
func New(settle time.Duration, files ...string) (*Watcher, error) {
	if len(files) == 0 {
		return nil, errors.New("no files to watch")
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsnotify: fsWatch,
		files:    make(map[string]string, len(files)),
		settle:   settle,
		events:   make(chan string),
		errors:   make(chan error),
		done:     make(chan struct{}),
	}

	dirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsWatch.Close()
			return nil, err
		}
		w.files[abs] = f
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsWatch.Add(dir); err != nil {
			fsWatch.Close()
			return nil, err
		}
		logging.LogDebug("watching %s", dir)
	}

	go w.start()
	return w, nil
}

// Events is closed when the watcher is closed.
func (w *Watcher) Events() <-chan string { return w.events }

func (w *Watcher) Errors() <-chan error { return w.errors }

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.once.Do(func() { close(w.done) })
	return nil
}

func (w *Watcher) start() {
	pending := map[string]time.Time{}
	timer := time.NewTimer(time.Hour)
	timer.Stop()

	defer func() {
		timer.Stop()
		w.fsnotify.Close()
		close(w.events)
		close(w.errors)
	}()

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			name, watched := w.files[filepath.Clean(e.Name)]
			if !watched {
				continue
			}
			pending[name] = time.Now()
			timer.Reset(w.settle)

		case <-timer.C:
			now := time.Now()
			for name, at := range pending {
				if now.Sub(at) < w.settle {
					timer.Reset(w.settle - now.Sub(at))
					continue
				}
				delete(pending, name)
				select {
				case w.events <- name:
				case <-w.done:
					return
				}
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok || !w.reportError(err) {
				return
			}

		case <-w.done:
			return
		}
	}
}

// reportError logs err and forwards it. It returns false if the watcher
// was closed first.
func (w *Watcher) reportError(err error) bool {
	logging.LogError("watch: %v", err)
	select {
	case w.errors <- err:
		return true
	case <-w.done:
		return false
	}
}
