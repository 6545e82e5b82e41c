package session

import "sync"

// DefaultCacheSize bounds the in-process legacy session cache.
const DefaultCacheSize = 1024

type cacheEntry struct {
	username  string
	expiresAt int64
}

// Cache holds legacy sessions in process memory. It is restart-volatile on
// purpose: a cold start empties it and the persistent tier refills it on the
// next cache miss.
type Cache struct {
	mu      sync.Mutex
	max     int
	entries map[string]cacheEntry
}

// NewCache creates a cache holding at most max sessions.
func NewCache(max int) *Cache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &Cache{max: max, entries: make(map[string]cacheEntry)}
}

// Get returns the cached session's username, evicting the entry if it has
// expired as of nowMs.
func (c *Cache) Get(token string, nowMs int64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[token]
	if !ok {
		return "", false
	}
	if e.expiresAt < nowMs {
		delete(c.entries, token)
		return "", false
	}
	return e.username, true
}

// Put stores a session, dropping an arbitrary entry when the cache is full.
func (c *Cache) Put(token, username string, expiresAt int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[token]; !exists && len(c.entries) >= c.max {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[token] = cacheEntry{username: username, expiresAt: expiresAt}
}

// Len reports the number of cached sessions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
