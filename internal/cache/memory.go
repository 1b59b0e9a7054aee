package cache

import (
	"context"
	"sync"
	"time"
)

// entry stores a cached value and its absolute expiration timestamp.
type entry struct {
	value     string
	expiresAt time.Time
}

// Memory is a map-backed cache with per-entry TTL. Expired entries are
// dropped lazily on read or via PurgeExpired; there is no background
// janitor. It stands in for the Redis strategy in development and tests.
type Memory struct {
	mu    sync.RWMutex
	items map[string]entry
}

// NewMemory constructs an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]entry)}
}

// now is a small indirection to allow test stubbing.
var now = time.Now

// Get implements Cache.Get.
func (c *Memory) Get(ctx context.Context, key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if now().After(e.expiresAt) {
		// expired; treat as miss (cleanup deferred to PurgeExpired)
		return "", false
	}
	return e.value, true
}

// Set implements Cache.Set.
func (c *Memory) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry{
		value:     value,
		expiresAt: now().Add(ttl),
	}
}

// Delete implements Cache.Delete.
func (c *Memory) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Len returns the number of non-expired entries currently stored.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	count := 0
	for _, e := range c.items {
		if now().Before(e.expiresAt) {
			count++
		}
	}
	return count
}

// PurgeExpired scans and removes expired entries.
func (c *Memory) PurgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	nowTs := now()
	for k, e := range c.items {
		if nowTs.After(e.expiresAt) {
			delete(c.items, k)
		}
	}
}

var _ Cache = (*Memory)(nil)
