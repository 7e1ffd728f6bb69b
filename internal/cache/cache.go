// Package cache is a process-local TTL memoization used by the standings
// and logo proxies. Entries are never evicted; key cardinality is small and
// bounded by construction (one standings slot, a few hundred team ids).
package cache

import (
	"sync"
	"time"
)

// Freshness classifies a lookup result.
type Freshness int

const (
	Missing Freshness = iota
	Fresh
	Stale
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache maps string keys to values with a freshness window. Safe for
// concurrent use; last writer wins.
type Cache[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry[V]
}

func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[V]),
	}
}

// NewWithClock injects the clock for tests.
func NewWithClock[V any](ttl time.Duration, now func() time.Time) *Cache[V] {
	c := New[V](ttl)
	c.now = now
	return c
}

// Get returns the stored value and whether it is still inside the
// freshness window. Expired entries are kept and reported Stale so callers
// can fall back to last-known-good data.
func (c *Cache[V]) Get(key string) (V, Freshness) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, Missing
	}
	if c.now().Sub(e.storedAt) < c.ttl {
		return e.value, Fresh
	}
	return e.value, Stale
}

func (c *Cache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
