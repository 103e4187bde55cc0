// Package cache holds decoded API payloads for the lifetime of the process.
package cache

import "sync"

// Cache maps a resource key to the payload previously retrieved for it.
// Entries are never evicted and never expire. It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

// New creates an empty cache. One cache is created at startup and shared by
// reference with everything that reads API data.
func New() *Cache {
	return &Cache{
		entries: make(map[string]any),
	}
}

// Lookup returns the payload stored under key, if any.
func (c *Cache) Lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok
}

// Store records value under key, replacing any previous entry.
func (c *Cache) Store(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
