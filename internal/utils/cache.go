package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem wraps cached data with its expiry.
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache is a small LRU cache with per-entry TTL, used to front hot product
// reads. Safe for concurrent use.
type Cache struct {
	lruCache *lru.Cache[string, CacheItem]
}

// NewCache creates a cache holding at most size entries.
func NewCache(size int) (*Cache, error) {
	l, err := lru.New[string, CacheItem](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lruCache: l}, nil
}

// Set stores data under key for the given TTL.
func (c *Cache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get returns the cached data, or nil when absent or expired.
func (c *Cache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}
	return val.Data
}

// Delete removes a single key.
func (c *Cache) Delete(key string) {
	c.lruCache.Remove(key)
}

// Purge empties the cache.
func (c *Cache) Purge() {
	c.lruCache.Purge()
}
