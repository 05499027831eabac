package cache

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/shelf/pkg/events"
)

// Watch publishes CollectionsInvalidated on the broadcaster whenever another
// process rewrites the on-disk snapshot. It blocks until ctx is cancelled.
func (c *Cache) Watch(ctx context.Context, broadcaster *events.Broadcaster) error {
	if c.basePath == "" {
		return errors.New("cache: no base path to watch")
	}
	if err := os.MkdirAll(c.basePath, 0o755); err != nil {
		return fmt.Errorf("cache: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cache: create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(c.basePath); err != nil {
		return fmt.Errorf("cache: watch %s: %w", c.basePath, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if err := c.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "cache: restore after change: %v\n", err)
				continue
			}
			if broadcaster != nil {
				broadcaster.Publish(events.CollectionsInvalidated{})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "cache: watch error: %v\n", err)
		}
	}
}
