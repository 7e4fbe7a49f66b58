package cache

import (
	"sync"
	"time"
)

// Clock supplies the current time; injected so tests control expiry.
type Clock func() time.Time

type entry struct {
	value     any
	fetchedAt time.Time
}

// Cache is a process-wide TTL cache for aggregated feed responses.
// One key per logical endpoint+parameter pair; entries are overwritten
// wholesale, never partially updated. Stale entries are ignored on read,
// not purged; PruneStale bounds memory from a background janitor.
type Cache struct {
	mu      sync.Mutex
	clock   Clock
	entries map[string]entry
}

// New creates a cache around the given clock. A nil clock means time.Now.
func New(clock Clock) *Cache {
	if clock == nil {
		clock = time.Now
	}
	return &Cache{
		clock:   clock,
		entries: make(map[string]entry),
	}
}

// Len returns the number of stored entries, stale ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// PruneStale removes every entry older than maxAge and returns the count.
func (c *Cache) PruneStale(maxAge time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	removed := 0
	for key, e := range c.entries {
		if now.Sub(e.fetchedAt) >= maxAge {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *Cache) lookup(key string, ttl time.Duration) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.clock().Sub(e.fetchedAt) >= ttl {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) store(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, fetchedAt: c.clock()}
}

// GetOrFetch returns the cached value for key when it is younger than ttl,
// otherwise calls fetch synchronously and stores the result. A failing
// fetch leaves any previous entry untouched, value and fetchedAt both, and
// the error propagates to the caller unmodified.
func GetOrFetch[T any](c *Cache, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if v, ok := c.lookup(key, ttl); ok {
		return v.(T), nil
	}

	value, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}

	c.store(key, value)
	return value, nil
}
