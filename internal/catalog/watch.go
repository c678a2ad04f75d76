package catalog

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/martinsuchenak/netinv/internal/log"
)

const defaultDebounce = 500 * time.Millisecond

// Watch reloads the catalog whenever the file is written or replaced. It
// blocks until ctx is cancelled.
func (c *Catalog) Watch(ctx context.Context) error {
	return c.watch(ctx, defaultDebounce)
}

func (c *Catalog) watch(ctx context.Context, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, editors often replace the file
	dir := filepath.Dir(c.path)
	filename := filepath.Base(c.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	log.Info("Watching platform catalog", "path", c.path)

	var timer *time.Timer
	reload := func() {
		if _, _, err := c.Load(ctx); err != nil {
			log.Error("Failed to reload platform catalog", "path", c.path, "error", err)
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Debounce rapid changes
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, reload)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Platform catalog watcher error", "error", err)

		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		}
	}
}
