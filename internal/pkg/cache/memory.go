package cache

import (
	"context"
	"time"

	"github.com/bluele/gcache"
)

// MemoryCache is an in-process TTL cache used when Redis is not
// configured
type MemoryCache struct {
	cache gcache.Cache
	ttl   time.Duration
}

// NewMemoryCache creates an LRU cache holding at most size entries
func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	if size <= 0 {
		size = 1000
	}

	return &MemoryCache{
		cache: gcache.New(size).LRU().Build(),
		ttl:   ttl,
	}
}

// Get retrieves a cached value by key
func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	value, err := m.cache.Get(key)
	if err != nil {
		return "", false
	}

	s, ok := value.(string)
	return s, ok
}

// Set stores a value with the configured TTL
func (m *MemoryCache) Set(_ context.Context, key string, value string) {
	_ = m.cache.SetWithExpire(key, value, m.ttl)
}
