package content

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/blackoutbot/blackout/pkg/catalog"
)

// Cache holds the loaded message catalog and reloads it when the file
// changes on disk. A reload that fails to parse or validate is discarded:
// the last good catalog keeps serving.
type Cache struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	current *catalog.Catalog

	watcher  *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
}

// NewCache loads the catalog at path and starts watching it for changes.
// The initial load must succeed.
func NewCache(path string, logger *slog.Logger) (*Cache, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("content: initial load: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("content: create watcher: %w", err)
	}
	// Watch the directory, not the file: editors replace files by rename,
	// which would drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("content: watch %s: %w", filepath.Dir(path), err)
	}

	c := &Cache{
		path:    path,
		logger:  logger,
		current: cat,
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go c.watch()
	return c, nil
}

// Current returns the most recently loaded valid catalog.
func (c *Cache) Current() *catalog.Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Close stops the file watcher.
func (c *Cache) Close() error {
	c.stopOnce.Do(func() {
		close(c.done)
	})
	return c.watcher.Close()
}

func (c *Cache) watch() {
	for {
		select {
		case <-c.done:
			return
		case event, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(c.path) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				c.reload()
			}
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			c.logger.Warn("Catalog watcher error", "error", err)
		}
	}
}

func (c *Cache) reload() {
	cat, err := catalog.Load(c.path)
	if err != nil {
		c.logger.Warn("Catalog reload failed, keeping previous version", "path", c.path, "error", err)
		return
	}

	c.mu.Lock()
	c.current = cat
	c.mu.Unlock()
	c.logger.Info("Catalog reloaded", "path", c.path)
}
