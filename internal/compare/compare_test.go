package compare

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"footprint/internal/climatiq"
	climatiqdto "footprint/internal/dto/climatiq_dto"
	"footprint/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type estimatorMock struct {
	customEstimateFunc func(ctx context.Context, label string, params climatiqdto.Parameters, opts climatiq.CustomOptions) (*climatiqdto.Estimation, error)
	flightFunc         func(ctx context.Context, p climatiq.FlightParams) (*climatiqdto.Estimation, error)
	cpuFunc            func(ctx context.Context, p climatiq.CPUParams) (*climatiqdto.Estimation, error)
	storageFunc        func(ctx context.Context, p climatiq.StorageParams) (*climatiqdto.Estimation, error)
	memoryFunc         func(ctx context.Context, p climatiq.MemoryParams) (*climatiqdto.Estimation, error)
}

func (m *estimatorMock) CustomEstimate(ctx context.Context, label string, params climatiqdto.Parameters, opts climatiq.CustomOptions) (*climatiqdto.Estimation, error) {
	return m.customEstimateFunc(ctx, label, params, opts)
}

func (m *estimatorMock) Flight(ctx context.Context, p climatiq.FlightParams) (*climatiqdto.Estimation, error) {
	return m.flightFunc(ctx, p)
}

func (m *estimatorMock) CPU(ctx context.Context, p climatiq.CPUParams) (*climatiqdto.Estimation, error) {
	return m.cpuFunc(ctx, p)
}

func (m *estimatorMock) Storage(ctx context.Context, p climatiq.StorageParams) (*climatiqdto.Estimation, error) {
	return m.storageFunc(ctx, p)
}

func (m *estimatorMock) Memory(ctx context.Context, p climatiq.MemoryParams) (*climatiqdto.Estimation, error) {
	return m.memoryFunc(ctx, p)
}

func kg(v float64) *climatiqdto.Estimation {
	return &climatiqdto.Estimation{Co2e: v, Co2eUnit: "kg"}
}

func TestComparator_Countries_KeepsInputOrder(t *testing.T) {
	var (
		mu     sync.Mutex
		labels []string
		params []climatiqdto.Parameters
	)
	usDone := make(chan struct{})
	m := &estimatorMock{
		customEstimateFunc: func(ctx context.Context, label string, p climatiqdto.Parameters, opts climatiq.CustomOptions) (*climatiqdto.Estimation, error) {
			mu.Lock()
			labels = append(labels, label)
			params = append(params, p)
			mu.Unlock()

			assert.True(t, opts.RegionFallback)
			switch p["country"] {
			case "FR":
				// FR answers only after US did
				<-usDone
				return kg(10), nil
			case "US":
				defer close(usDone)
				return kg(20), nil
			}
			return nil, errors.New("unexpected country")
		},
	}

	input := climatiqdto.Parameters{"distance": 100}
	res, err := New(m).Countries(context.Background(), "car_trip", input, []string{"FR", "US"})
	require.NoError(t, err)

	assert.Equal(t, []schema.CountryResult{
		{Country: "FR", Co2e: 10, Unit: "kg"},
		{Country: "US", Co2e: 20, Unit: "kg"},
	}, res)
	assert.Equal(t, []string{"car_trip", "car_trip"}, labels)
	for _, p := range params {
		assert.Equal(t, 100, p["distance"])
	}
	assert.NotContains(t, input, "country")
}

func TestComparator_Countries_Empty(t *testing.T) {
	res, err := New(&estimatorMock{}).Countries(context.Background(), "car_trip", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.NotNil(t, res)
}

func TestComparator_FailFast(t *testing.T) {
	rejected := errors.New("rejected")
	var canceled atomic.Bool
	m := &estimatorMock{
		customEstimateFunc: func(ctx context.Context, label string, p climatiqdto.Parameters, opts climatiq.CustomOptions) (*climatiqdto.Estimation, error) {
			if p["country"] == "XX" {
				return nil, rejected
			}
			select {
			case <-ctx.Done():
				canceled.Store(true)
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return kg(1), nil
			}
		},
	}

	res, err := New(m).Countries(context.Background(), "car_trip", nil, []string{"FR", "XX"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, rejected)
	assert.ErrorContains(t, err, "country XX")
	assert.True(t, canceled.Load())
}

func TestComparator_FailFast_KeepsTypedError(t *testing.T) {
	m := &estimatorMock{
		customEstimateFunc: func(ctx context.Context, label string, p climatiqdto.Parameters, opts climatiq.CustomOptions) (*climatiqdto.Estimation, error) {
			return nil, &climatiq.Error{Kind: climatiq.KindClientRejected, Status: 404, Message: "resource not found"}
		},
	}

	_, err := New(m).TransportTypes(context.Background(), nil, []string{"car"})
	status, ok := climatiq.StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, 404, status)
}

func TestComparator_ByType(t *testing.T) {
	testCases := []struct {
		name           string
		run            func(c *Comparator) ([]schema.TypeResult, error)
		expectedLabels []string
		expected       []schema.TypeResult
	}{
		{
			name: "transport",
			run: func(c *Comparator) ([]schema.TypeResult, error) {
				return c.TransportTypes(context.Background(), climatiqdto.Parameters{"distance": 50}, []string{"car", "train", "bus"})
			},
			expectedLabels: []string{"transport_car", "transport_train", "transport_bus"},
			expected: []schema.TypeResult{
				{Type: "car", Co2e: 13, Unit: "kg"},
				{Type: "train", Co2e: 15, Unit: "kg"},
				{Type: "bus", Co2e: 13, Unit: "kg"},
			},
		},
		{
			name: "energy",
			run: func(c *Comparator) ([]schema.TypeResult, error) {
				return c.EnergyTypes(context.Background(), climatiqdto.Parameters{"energy": 100}, []string{"electricity", "heat", "fuel"})
			},
			expectedLabels: []string{"energy_electricity", "energy_heat", "energy_fuel"},
			expected: []schema.TypeResult{
				{Type: "electricity", Co2e: 18, Unit: "kg"},
				{Type: "heat", Co2e: 11, Unit: "kg"},
				{Type: "fuel", Co2e: 11, Unit: "kg"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var mu sync.Mutex
			seen := map[string]bool{}
			m := &estimatorMock{
				customEstimateFunc: func(ctx context.Context, label string, p climatiqdto.Parameters, opts climatiq.CustomOptions) (*climatiqdto.Estimation, error) {
					mu.Lock()
					seen[label] = true
					mu.Unlock()
					assert.True(t, opts.RegionFallback)
					return kg(float64(len(label))), nil
				},
			}

			res, err := tc.run(New(m))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res)
			for _, label := range tc.expectedLabels {
				assert.True(t, seen[label], label)
			}
		})
	}
}

func TestComparator_Activities(t *testing.T) {
	year := 2023
	m := &estimatorMock{
		flightFunc: func(ctx context.Context, p climatiq.FlightParams) (*climatiqdto.Estimation, error) {
			assert.Equal(t, "CDG", p.Origin)
			return kg(120), nil
		},
		cpuFunc: func(ctx context.Context, p climatiq.CPUParams) (*climatiqdto.Estimation, error) {
			assert.Equal(t, &year, p.Year)
			return &climatiqdto.Estimation{TotalCo2e: 0.4, TotalCo2eUnit: "kg"}, nil
		},
		storageFunc: func(ctx context.Context, p climatiq.StorageParams) (*climatiqdto.Estimation, error) {
			return kg(0.1), nil
		},
		memoryFunc: func(ctx context.Context, p climatiq.MemoryParams) (*climatiqdto.Estimation, error) {
			return kg(0.2), nil
		},
		customEstimateFunc: func(ctx context.Context, label string, p climatiqdto.Parameters, opts climatiq.CustomOptions) (*climatiqdto.Estimation, error) {
			assert.Equal(t, "commute", label)
			assert.Equal(t, 12, p["distance"])
			assert.True(t, opts.RegionFallback)
			return kg(3), nil
		},
	}

	res, err := New(m).Activities(context.Background(), []Activity{
		{Name: "trip", Type: "flight", Flight: &climatiq.FlightParams{Origin: "CDG", Destination: "MRS"}},
		{Name: "build", Type: "cpu", CPU: &climatiq.CPUParams{Provider: "aws", Region: "us-east-1", CPUCount: 2, Duration: 1, Year: &year}},
		{Name: "backup", Type: "storage", Storage: &climatiq.StorageParams{Provider: "aws"}},
		{Name: "cache", Type: "memory", Memory: &climatiq.MemoryParams{Provider: "aws"}},
		{Name: "daily", Type: "commute", Parameters: climatiqdto.Parameters{"distance": 12}},
	})
	require.NoError(t, err)
	assert.Equal(t, []schema.ActivityResult{
		{Name: "trip", Type: "flight", Co2e: 120, Unit: "kg"},
		{Name: "build", Type: "cpu", Co2e: 0.4, Unit: "kg"},
		{Name: "backup", Type: "storage", Co2e: 0.1, Unit: "kg"},
		{Name: "cache", Type: "memory", Co2e: 0.2, Unit: "kg"},
		{Name: "daily", Type: "commute", Co2e: 3, Unit: "kg"},
	}, res)
}

func TestComparator_Activities_MissingParameters(t *testing.T) {
	_, err := New(&estimatorMock{}).Activities(context.Background(), []Activity{{Name: "trip", Type: "flight"}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "activity trip: missing flight parameters")
}

func TestComparator_CountryStats(t *testing.T) {
	m := &estimatorMock{
		customEstimateFunc: func(ctx context.Context, label string, p climatiqdto.Parameters, opts climatiq.CustomOptions) (*climatiqdto.Estimation, error) {
			assert.Equal(t, "country_emissions", label)
			assert.True(t, opts.RegionFallback)
			if p["country"] == "FR" {
				return &climatiqdto.Estimation{Co2e: 300, Co2eUnit: "t", Year: 2021}, nil
			}
			return &climatiqdto.Estimation{Co2e: 5000, Co2eUnit: "t"}, nil
		},
	}
	c := New(m)
	c.now = func() time.Time { return time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC) }

	res, err := c.CountryStats(context.Background(), []string{"FR", "US"})
	require.NoError(t, err)
	assert.Equal(t, []schema.CountryStats{
		{Country: "FR", TotalEmissions: 300, Unit: "t", Year: 2021},
		{Country: "US", TotalEmissions: 5000, Unit: "t", Year: 2026},
	}, res)
}
