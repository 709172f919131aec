// Package storage is the read-through cache in front of the Climatiq client:
// local lru, then redis when configured, then the loader.
package storage

import (
	"context"

	"github.com/rs/zerolog/log"
)

// priorities of cached entries, the highest is evicted first
const (
	PriorityWarm   = 0
	PriorityOnLoad = 1
)

const (
	layerLRU   = "lru"
	layerRedis = "redis"
)

// Loader fetches a value missing from every cache layer
type Loader[V any] func(ctx context.Context) (V, error)

type Cache[V any] struct {
	name          string
	lruLocalCache lruLocalCache[V]
	redisCache    redisCache[V]
	metrics       metrics
}

// New returns a cache without a redis layer
func New[V any](name string, lruLocalCache lruLocalCache[V], metrics metrics) *Cache[V] {
	return &Cache[V]{
		name:          name,
		lruLocalCache: lruLocalCache,
		metrics:       metrics,
	}
}

// WithRedis adds the shared layer behind the local one
func (c *Cache[V]) WithRedis(redisCache redisCache[V]) *Cache[V] {
	c.redisCache = redisCache
	return c
}

// Get returns the cached value of key, loading and caching it on a miss.
// Only loader errors are returned, cache failures are logged.
func (c *Cache[V]) Get(ctx context.Context, key string, load Loader[V]) (V, error) {
	//getting from local in memory cache
	if v, ok := c.lruLocalCache.Get(key); ok {
		c.metrics.CacheLookup(c.name, layerLRU, true)
		return v, nil
	}
	c.metrics.CacheLookup(c.name, layerLRU, false)

	//if we didn't find it - gets from redis
	if c.redisCache != nil {
		v, found, err := c.redisCache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("cache", c.name).Str("key", key).Msg("couldn't read from redis")
		}
		c.metrics.CacheLookup(c.name, layerRedis, found)
		if found {
			c.lruLocalCache.Set(key, v, PriorityOnLoad)
			return v, nil
		}
	}

	return c.load(ctx, key, load, PriorityOnLoad)
}

// Refresh loads key bypassing the cached value, and keeps it as a warm entry
func (c *Cache[V]) Refresh(ctx context.Context, key string, load Loader[V]) (V, error) {
	return c.load(ctx, key, load, PriorityWarm)
}

// Keys lists the keys held by the local layer
func (c *Cache[V]) Keys() []string {
	return c.lruLocalCache.Keys()
}

func (c *Cache[V]) load(ctx context.Context, key string, load Loader[V], priority int) (V, error) {
	v, err := load(ctx)
	if err != nil {
		var zero V
		return zero, err
	}
	//save elem in both caches
	c.lruLocalCache.Set(key, v, priority)
	if c.redisCache != nil {
		c.redisCache.Update(key, v)
	}
	return v, nil
}
