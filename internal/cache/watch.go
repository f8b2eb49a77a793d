package cache

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// OnChange subscribes to external mutations of the backing file, the
// analog of another browser tab writing the same store. Events for other
// files in the directory are filtered out. The returned function stops
// the watch; it is safe to call more than once.
func (c *Cache) OnChange(fn func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: the atomic rename on flush
	// replaces the inode, which would silently end a file-level watch.
	if err := watcher.Add(c.dir()); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(c.path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
					fn()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				c.log.Warn().Err(err).Msg("cache watch error")
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			watcher.Close()
		})
	}, nil
}
