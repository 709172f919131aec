package service

import (
	"context"

	"footprint/internal/storage"
)

type cache[V any] interface {
	Get(ctx context.Context, key string, load storage.Loader[V]) (V, error)
	Refresh(ctx context.Context, key string, load storage.Loader[V]) (V, error)
	Keys() []string
}
