// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Stores opaque byte values with per-key TTL and periodic expiry cleanup

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// DefaultCleanupInterval is how often expired items are purged
const DefaultCleanupInterval = 10 * time.Minute

// MemoryCache implements the Cache interface using an in-process go-cache store
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache. A zero defaultExpiration
// keeps entries stored without a TTL until deleted.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	if defaultExpiration <= 0 {
		defaultExpiration = gocache.NoExpiration
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &MemoryCache{store: gocache.New(defaultExpiration, cleanupInterval)}
}

// Get retrieves a copy of the value stored under key
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, found := c.store.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a copy of value. A zero ttl means no expiration.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.store.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.store.Delete(key)
	return nil
}

// Count returns the number of stored items, including expired ones not yet purged
func (c *MemoryCache) Count() int {
	return c.store.ItemCount()
}
