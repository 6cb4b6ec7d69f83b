// Package cache memoizes query results for the HTTP server.
// It uses patrickmn/go-cache for TTL-based expiry.
package cache

import (
	"net/url"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Key kinds.
const (
	KindModels = "models"
	KindModel  = "model"
	KindFacets = "facets"
	KindAbout  = "about"
)

// Cache wraps go-cache with hit and miss counters.
type Cache struct {
	store  *gocache.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a cache with the given default TTL and cleanup interval.
func New(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Key builds a cache key from a kind and a query string. Parameters are
// re-encoded in sorted order so equivalent queries share an entry.
func Key(kind, rawQuery string) string {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return kind + ":" + rawQuery
	}
	return kind + ":" + values.Encode()
}

// Get retrieves a value from the cache.
func (c *Cache) Get(key string) (any, bool) {
	v, ok := c.store.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Set stores a value with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// SetWithTTL stores a value with a custom TTL.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}

// GetOrCompute returns the cached value for key, or computes and stores it.
// Errors are not cached.
func (c *Cache) GetOrCompute(key string, compute func() (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	c.Set(key, v)
	return v, nil
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	c.store.Flush()
}

// ItemCount returns the number of items in the cache.
func (c *Cache) ItemCount() int {
	return c.store.ItemCount()
}

// Stats returns cache statistics.
type Stats struct {
	ItemCount int   `json:"item_count"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
}

// GetStats returns current cache statistics.
func (c *Cache) GetStats() Stats {
	return Stats{
		ItemCount: c.store.ItemCount(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
	}
}
