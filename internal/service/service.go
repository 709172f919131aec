// Package service is the Climatiq client as the proxy serves it: every
// endpoint and comparison, with emission factors and region lists cached.
package service

import (
	"context"

	"footprint/internal/climatiq"
	"footprint/internal/compare"
	climatiqdto "footprint/internal/dto/climatiq_dto"
	"footprint/internal/schema"

	"github.com/rs/zerolog/log"
)

type Service struct {
	*climatiq.Client
	*compare.Comparator

	factors cache[climatiqdto.Factor]
	regions cache[[]schema.Region]
}

func New(client *climatiq.Client,
	factors cache[climatiqdto.Factor],
	regions cache[[]schema.Region],
) *Service {
	return &Service{
		Client:     client,
		Comparator: compare.New(client),
		factors:    factors,
		regions:    regions,
	}
}

// EmissionFactor returns an emission factor by id, from cache when possible
func (s *Service) EmissionFactor(ctx context.Context, id string) (*climatiqdto.Factor, error) {
	factor, err := s.factors.Get(ctx, id, s.loadFactor(id))
	if err != nil {
		return nil, err
	}
	return &factor, nil
}

// CloudRegions returns the regions of a provider, from cache when possible.
// Only lists reported by the API are cached, the static fallback never is.
func (s *Service) CloudRegions(ctx context.Context, provider string) []schema.Region {
	regions, err := s.regions.Get(ctx, provider, s.loadRegions(provider))
	if err != nil {
		return s.Client.FallbackRegions(provider, err)
	}
	return regions
}

// WarmRegions reloads the region lists of providers into the cache
func (s *Service) WarmRegions(ctx context.Context, providers []string) {
	for _, provider := range providers {
		regions, err := s.regions.Refresh(ctx, provider, s.loadRegions(provider))
		if err != nil {
			log.Warn().Err(err).Str("provider", provider).Msg("couldn't warm up regions")
			continue
		}
		log.Debug().Str("provider", provider).Int("regions", len(regions)).Msg("regions warmed up")
	}
}

// WarmFactors reloads emission factors into the cache
func (s *Service) WarmFactors(ctx context.Context, ids []string) {
	for _, id := range ids {
		if _, err := s.factors.Refresh(ctx, id, s.loadFactor(id)); err != nil {
			log.Warn().Err(err).Str("id", id).Msg("couldn't warm up emission factor")
		}
	}
}

// CachedFactorIDs lists the emission factors held in the local cache
func (s *Service) CachedFactorIDs() []string {
	return s.factors.Keys()
}

func (s *Service) loadFactor(id string) func(ctx context.Context) (climatiqdto.Factor, error) {
	return func(ctx context.Context) (climatiqdto.Factor, error) {
		factor, err := s.Client.EmissionFactor(ctx, id)
		if err != nil {
			return climatiqdto.Factor{}, err
		}
		return *factor, nil
	}
}

func (s *Service) loadRegions(provider string) func(ctx context.Context) ([]schema.Region, error) {
	return func(ctx context.Context) ([]schema.Region, error) {
		return s.Client.FetchCloudRegions(ctx, provider)
	}
}
