// Package cache keeps the last known collection snapshot. The flat list is
// process-wide read state: a refresh replaces the whole snapshot rather than
// patching in place, so concurrent readers always see a consistent view. The
// snapshot is also mirrored to disk so listings work offline.
package cache

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/shelf/pkg/collection"
)

const snapshotKey = "collections"

// Cache holds the in-memory snapshot and its on-disk mirror.
type Cache struct {
	mu          sync.RWMutex
	collections []collection.Collection

	d        *diskv.Diskv
	basePath string
}

// New creates a cache persisted under basePath. An empty basePath keeps the
// cache memory-only.
func New(basePath string) *Cache {
	c := &Cache{basePath: basePath}
	if basePath != "" {
		c.d = diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		})
	}
	return c
}

// BasePath returns the on-disk location, empty when memory-only.
func (c *Cache) BasePath() string {
	return c.basePath
}

// Set replaces the snapshot and mirrors it to disk.
func (c *Cache) Set(all []collection.Collection) error {
	c.mu.Lock()
	c.collections = cloneAll(all)
	c.mu.Unlock()

	if c.d == nil {
		return nil
	}
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("cache: encode snapshot: %w", err)
	}
	if err := c.d.Write(snapshotKey, data); err != nil {
		return fmt.Errorf("cache: write snapshot: %w", err)
	}
	return nil
}

// Snapshot returns an independent copy of the current list.
func (c *Cache) Snapshot() []collection.Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.collections)
}

// Get looks up one collection by id in the snapshot.
func (c *Cache) Get(id string) (collection.Collection, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return collection.ByID(c.collections, id)
}

// Restore loads the last snapshot from disk into memory. Missing data is not
// an error; it just leaves the cache empty.
func (c *Cache) Restore() error {
	if c.d == nil {
		return nil
	}
	if !c.d.Has(snapshotKey) {
		return nil
	}
	data, err := c.d.Read(snapshotKey)
	if err != nil {
		return fmt.Errorf("cache: read snapshot: %w", err)
	}
	var all []collection.Collection
	if err := json.Unmarshal(data, &all); err != nil {
		return fmt.Errorf("cache: decode snapshot: %w", err)
	}
	c.mu.Lock()
	c.collections = all
	c.mu.Unlock()
	return nil
}

func cloneAll(all []collection.Collection) []collection.Collection {
	out := make([]collection.Collection, 0, len(all))
	for _, c := range all {
		out = append(out, c.Clone())
	}
	return out
}
