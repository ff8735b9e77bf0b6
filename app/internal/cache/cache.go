package cache

import (
	"sync"
	"time"
)

// Entry represents a cached value with the instant it was stored
type Entry struct {
	Value     interface{}
	FetchedAt time.Time
}

// Cache provides a simple in-memory response cache with TTL. Entries are
// never evicted explicitly, only overwritten or aged out; concurrent
// writers race benignly (last write wins).
type Cache struct {
	mu    sync.RWMutex
	items map[string]Entry
	ttl   time.Duration
	now   func() time.Time
}

// New creates a new cache with the given TTL
func New(ttl time.Duration) *Cache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock creates a cache with an injected clock, for tests
func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		items: make(map[string]Entry),
		ttl:   ttl,
		now:   now,
	}
}

// TTL returns the configured time-to-live
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get retrieves a value from the cache if its age is below the TTL
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.items[key]
	if !exists {
		return nil, false
	}

	if c.now().Sub(entry.FetchedAt) >= c.ttl {
		return nil, false
	}

	return entry.Value, true
}

// Set stores a value with a fresh timestamp, overwriting any previous entry
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Entry{
		Value:     value,
		FetchedAt: c.now(),
	}
}

// Clear removes all values from the cache
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]Entry)
}
