package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a TTL cache with request coalescing: concurrent loads for the
// same key collapse into one call via singleflight instead of each caller
// hitting the backing store (or worse, spin-waiting on a shared cache key).
type Cache[V any] struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]entry[V]
	sf      singleflight.Group
}

type entry[V any] struct {
	value V
	built time.Time
}

// New creates a cache with the given TTL. A non-positive TTL disables
// caching entirely; GetOrLoad then always invokes the loader (still
// coalesced per key).
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{ttl: ttl, entries: make(map[string]entry[V])}
}

// GetOrLoad returns the cached value for key, loading and storing it when
// absent or expired. Loader errors are returned to every coalesced caller
// and nothing is cached.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}
	out, err, _ := c.sf.Do(key, func() (any, error) {
		// A concurrent caller may have filled the entry while we queued.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return out.(V), nil
}

// Invalidate drops the entry for key. Mutators call this after every
// successful write so readers never observe a stale ordering.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache[V]) lookup(key string) (V, bool) {
	if c.ttl <= 0 {
		var zero V
		return zero, false
	}
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Since(e.built) > c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[V]) store(key string, v V) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = entry[V]{value: v, built: time.Now()}
	c.mu.Unlock()
}
