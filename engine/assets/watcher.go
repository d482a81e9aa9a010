package assets

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/anima-gl/engine/core"
)

// changeBacklog is how many unread change notifications are kept before new
// ones are dropped. The render loop drains them every frame.
const changeBacklog = 64

// Watcher reports modified shader sources below a set of directories.
// Notifications are delivered on a channel; the watcher never touches
// device state, so the receiver decides on which thread to rebuild.
type Watcher struct {
	fsnotify *fsnotify.Watcher

	mutex    sync.Mutex
	isClosed bool

	done    chan struct{}
	stopped chan struct{}
	changes chan string
	errors  chan error
}

func NewWatcher() (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		changes:  make(chan string, changeBacklog),
		errors:   make(chan error, 1),
	}
	go w.start()
	return w, nil
}

// Changes delivers absolute paths of shader sources that were written or
// created.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// AddRecursive starts watching the named directory and all sub-directories.
func (w *Watcher) AddRecursive(name string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return errors.New("watcher already closed")
	}
	return w.watchRecursive(name)
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return nil
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	<-w.stopped
	return nil
}

func (w *Watcher) start() {
	defer close(w.stopped)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			w.handleEvent(e)

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("shader watcher: %s", err)
			select {
			case w.errors <- err:
			default:
			}

		case <-w.done:
			w.fsnotify.Close()
			close(w.changes)
			close(w.errors)
			return
		}
	}
}

func (w *Watcher) handleEvent(e fsnotify.Event) {
	if e.Op&fsnotify.Create != 0 {
		if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
			w.mutex.Lock()
			if !w.isClosed {
				if err := w.watchRecursive(e.Name); err != nil {
					core.LogWarn("shader watcher: %s", err)
				}
			}
			w.mutex.Unlock()
			return
		}
	}
	if e.Op&(fsnotify.Create|fsnotify.Write) == 0 || !IsShaderSource(e.Name) {
		return
	}
	path, err := filepath.Abs(e.Name)
	if err != nil {
		path = e.Name
	}
	select {
	case w.changes <- path:
	default:
		core.LogDebug("shader watcher: backlog full, dropping %s", path)
	}
}

// watchRecursive adds all directories under the given one to the watch list.
func (w *Watcher) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return w.fsnotify.Add(walkPath)
		}
		return nil
	})
}

// IsShaderSource reports whether path has a GLSL source extension.
func IsShaderSource(path string) bool {
	switch filepath.Ext(path) {
	case ".vert", ".frag", ".glsl", ".vs", ".fs":
		return true
	default:
		return false
	}
}
