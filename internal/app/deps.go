package app

import (
	"context"
)

type warmer interface {
	WarmRegions(ctx context.Context, providers []string)
	WarmFactors(ctx context.Context, ids []string)
	CachedFactorIDs() []string
}
