// Package compare runs several estimates concurrently and lines their
// results up for comparison. Results keep the order of the input, and the
// first failing estimate fails the whole comparison.
package compare

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"footprint/internal/climatiq"
	climatiqdto "footprint/internal/dto/climatiq_dto"
	"footprint/internal/schema"

	"golang.org/x/sync/errgroup"
)

const (
	transportLabelPrefix  = "transport_"
	energyLabelPrefix     = "energy_"
	countryEmissionsLabel = "country_emissions"
	countryParameter      = "country"
)

// Activity one entry of an activity comparison. Type selects which of the
// parameter blocks is used; any type other than flight, cpu, storage and
// memory is estimated through the custom mapping of that name.
type Activity struct {
	Name       string                  `json:"name"`
	Type       string                  `json:"type"`
	Flight     *climatiq.FlightParams  `json:"flight,omitempty"`
	CPU        *climatiq.CPUParams     `json:"cpu,omitempty"`
	Storage    *climatiq.StorageParams `json:"storage,omitempty"`
	Memory     *climatiq.MemoryParams  `json:"memory,omitempty"`
	Parameters climatiqdto.Parameters  `json:"parameters,omitempty"`
}

type Comparator struct {
	estimator estimator
	now       func() time.Time
}

func New(estimator estimator) *Comparator {
	return &Comparator{
		estimator: estimator,
		now:       time.Now,
	}
}

var regionFallback = climatiq.CustomOptions{RegionFallback: true}

// fanOut runs fn for every index of n concurrently and stops at the first error
func fanOut(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	eg, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			return fn(groupCtx, i)
		})
	}
	return eg.Wait()
}

// Countries estimates one custom mapping activity in each country
func (c *Comparator) Countries(ctx context.Context, activity string, params climatiqdto.Parameters, countries []string) ([]schema.CountryResult, error) {
	results := make([]schema.CountryResult, len(countries))
	err := fanOut(ctx, len(countries), func(ctx context.Context, i int) error {
		country := countries[i]
		p := maps.Clone(params)
		if p == nil {
			p = climatiqdto.Parameters{}
		}
		p[countryParameter] = country

		res, err := c.estimator.CustomEstimate(ctx, activity, p, regionFallback)
		if err != nil {
			return fmt.Errorf("country %s: %w", country, err)
		}
		co2e, unit := res.Amount()
		results[i] = schema.CountryResult{Country: country, Co2e: co2e, Unit: unit}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// TransportTypes estimates the same trip with each transport type
func (c *Comparator) TransportTypes(ctx context.Context, params climatiqdto.Parameters, types []string) ([]schema.TypeResult, error) {
	return c.byType(ctx, transportLabelPrefix, params, types)
}

// EnergyTypes estimates the same consumption with each energy type
func (c *Comparator) EnergyTypes(ctx context.Context, params climatiqdto.Parameters, types []string) ([]schema.TypeResult, error) {
	return c.byType(ctx, energyLabelPrefix, params, types)
}

func (c *Comparator) byType(ctx context.Context, prefix string, params climatiqdto.Parameters, types []string) ([]schema.TypeResult, error) {
	results := make([]schema.TypeResult, len(types))
	err := fanOut(ctx, len(types), func(ctx context.Context, i int) error {
		res, err := c.estimator.CustomEstimate(ctx, prefix+types[i], params, regionFallback)
		if err != nil {
			return fmt.Errorf("type %s: %w", types[i], err)
		}
		co2e, unit := res.Amount()
		results[i] = schema.TypeResult{Type: types[i], Co2e: co2e, Unit: unit}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Activities estimates heterogeneous activities side by side
func (c *Comparator) Activities(ctx context.Context, activities []Activity) ([]schema.ActivityResult, error) {
	results := make([]schema.ActivityResult, len(activities))
	err := fanOut(ctx, len(activities), func(ctx context.Context, i int) error {
		a := activities[i]
		res, err := c.estimate(ctx, a)
		if err != nil {
			return fmt.Errorf("activity %s: %w", a.Name, err)
		}
		co2e, unit := res.Amount()
		results[i] = schema.ActivityResult{Name: a.Name, Type: a.Type, Co2e: co2e, Unit: unit}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Comparator) estimate(ctx context.Context, a Activity) (*climatiqdto.Estimation, error) {
	switch a.Type {
	case "flight":
		if a.Flight == nil {
			return nil, errors.New("missing flight parameters")
		}
		return c.estimator.Flight(ctx, *a.Flight)
	case "cpu":
		if a.CPU == nil {
			return nil, errors.New("missing cpu parameters")
		}
		return c.estimator.CPU(ctx, *a.CPU)
	case "storage":
		if a.Storage == nil {
			return nil, errors.New("missing storage parameters")
		}
		return c.estimator.Storage(ctx, *a.Storage)
	case "memory":
		if a.Memory == nil {
			return nil, errors.New("missing memory parameters")
		}
		return c.estimator.Memory(ctx, *a.Memory)
	default:
		return c.estimator.CustomEstimate(ctx, a.Type, a.Parameters, regionFallback)
	}
}

// CountryStats fetches the reported total emissions of each country. A
// response without a year is attributed to the current year.
func (c *Comparator) CountryStats(ctx context.Context, countries []string) ([]schema.CountryStats, error) {
	results := make([]schema.CountryStats, len(countries))
	err := fanOut(ctx, len(countries), func(ctx context.Context, i int) error {
		country := countries[i]
		res, err := c.estimator.CustomEstimate(ctx, countryEmissionsLabel, climatiqdto.Parameters{countryParameter: country}, regionFallback)
		if err != nil {
			return fmt.Errorf("country %s: %w", country, err)
		}
		year := res.Year
		if year == 0 {
			year = c.now().Year()
		}
		co2e, unit := res.Amount()
		results[i] = schema.CountryStats{Country: country, TotalEmissions: co2e, Unit: unit, Year: year}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
