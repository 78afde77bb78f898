package auth

import "sync"

// Cache holds at most one shared TokenRecord. Each Client owns its own
// Cache, so independently configured clients in one process never share
// token state. Records are replaced atomically, never mutated.
type Cache struct {
	mu  sync.Mutex
	rec *TokenRecord
}

// NewCache returns an empty token cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the cached record, or nil when the cache is empty.
func (c *Cache) Get() *TokenRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rec
}

// Set replaces the cached record.
func (c *Cache) Set(rec *TokenRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rec = rec
}

// Clear drops the cached record.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rec = nil
}
