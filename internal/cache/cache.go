// Package cache provides a process-wide cache for fetched resource lists
// (voyages, vessels, unit types), keyed by resource name. It replaces the
// ambient global list-cache the creation flow used to share with the list
// screen: consumers receive a *Cache by reference and invalidation is an
// explicit call, made by the submission flow on its success transition only.
package cache

import (
	"context"
	"sync"
)

// Well-known resource keys. Callers may use arbitrary keys; these cover the
// three lists the application fetches.
const (
	KeyVoyages   = "voyages"
	KeyVessels   = "vessels"
	KeyUnitTypes = "unittypes"
)

// Cache is a concurrency-safe map of resource name to cached value.
// Entries are initialized lazily via GetOrLoad and live until invalidated.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[string]any)}
}

// Get returns the cached value for key, if present.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores v under key, replacing any existing entry.
func (c *Cache) Put(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

// GetOrLoad returns the cached value for key, calling load to populate it on
// a miss. A load error is returned without caching anything, so the next
// call retries. Concurrent callers on a cold key may each invoke load; the
// last writer wins, which is acceptable for idempotent list fetches.
func (c *Cache) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		return nil, err
	}
	c.Put(key, v)
	return v, nil
}

// Invalidate removes the entry for key. Missing keys are a no-op.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateAll clears every entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]any)
}
