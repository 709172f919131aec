package storage

import (
	"context"
)

type lruLocalCache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, priority int)
	Keys() []string
}

type redisCache[V any] interface {
	Get(ctx context.Context, key string) (V, bool, error)
	Update(key string, value V)
}

type metrics interface {
	CacheLookup(cache, layer string, hit bool)
}
