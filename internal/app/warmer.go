package app

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// warmUpKey holds the emission factor ids cached by the last running instance
const warmUpKey = "footprint:warmup:emission_factors"

func startWarmUpper(ctx context.Context,
	rdb *redis.Client,
	providers []string,
	period time.Duration,
	w warmer,
) {
	go func() {
		w.WarmRegions(ctx, providers)
		if rdb != nil {
			warmup(ctx, rdb, w)
		}
	}()

	go refreshPeriodically(ctx, period, rdb, providers, w)
}

// warmup loads the emission factors saved by exportIDs
func warmup(ctx context.Context, rdb *redis.Client, w warmer) {
	raw, err := rdb.Get(ctx, warmUpKey).Result()
	if errors.Is(err, redis.Nil) {
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("couldn't warm up")
		return
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Error().Err(err).Msg("couldn't unmarshal warm up ids")
		return
	}
	if len(ids) == 0 {
		return
	}

	w.WarmFactors(ctx, ids)
	log.Info().Int("emission_factors", len(ids)).Msg("warmed up")
}

// exportIDs saves the ids of the cached emission factors for the next start
func exportIDs(ctx context.Context, rdb *redis.Client, w warmer) error {
	data, err := json.Marshal(w.CachedFactorIDs())
	if err != nil {
		return err
	}
	return rdb.Set(ctx, warmUpKey, string(data), 0).Err()
}

// refreshPeriodically reloads the region lists and exports the cached ids every period
func refreshPeriodically(ctx context.Context, period time.Duration, rdb *redis.Client, providers []string, w warmer) {
	if period <= 0 {
		return
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("refreshPeriodically: context canceled, stopping")
			return
		case <-ticker.C:
			w.WarmRegions(ctx, providers)
			if rdb == nil {
				continue
			}
			if err := exportIDs(ctx, rdb, w); err != nil {
				log.Error().Err(err).Msg("couldn't export cached ids")
			}
		}
	}
}
