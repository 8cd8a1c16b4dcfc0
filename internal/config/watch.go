package config

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher notices changes to a config file. It watches the containing
// directory so editors that replace the file on save are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	changed chan struct{}
	done    chan struct{}
}

func Watch(path string, log *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{watcher: fw, changed: make(chan struct{}, 1), done: make(chan struct{})}
	name := filepath.Base(path)
	go func() {
		for {
			select {
			case <-w.done:
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					select {
					case w.changed <- struct{}{}:
					default:
					}
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				log.Warn("config watch", "err", err)
			}
		}
	}()
	return w, nil
}

// Changed reports, without blocking, whether the file changed since the
// last call.
func (w *Watcher) Changed() bool {
	select {
	case <-w.changed:
		return true
	default:
		return false
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
