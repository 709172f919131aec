package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type warmerMock struct {
	mu        sync.Mutex
	regions   [][]string
	factors   [][]string
	cachedIDs []string
}

func (m *warmerMock) WarmRegions(ctx context.Context, providers []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regions = append(m.regions, providers)
}

func (m *warmerMock) WarmFactors(ctx context.Context, ids []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.factors = append(m.factors, ids)
}

func (m *warmerMock) CachedFactorIDs() []string {
	return m.cachedIDs
}

func (m *warmerMock) regionCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.regions)
}

func TestWarmup(t *testing.T) {
	testCases := []struct {
		name            string
		setup           func(mock redismock.ClientMock)
		expectedFactors [][]string
	}{
		{
			name: "saved ids are loaded",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(warmUpKey).SetVal(`["f1","f2"]`)
			},
			expectedFactors: [][]string{{"f1", "f2"}},
		},
		{
			name: "nothing saved",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(warmUpKey).RedisNil()
			},
		},
		{
			name: "empty list",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(warmUpKey).SetVal(`[]`)
			},
		},
		{
			name: "garbage",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(warmUpKey).SetVal(`{`)
			},
		},
		{
			name: "redis down",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(warmUpKey).SetErr(errors.New("connection refused"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tc.setup(mock)
			w := &warmerMock{}

			warmup(context.Background(), db, w)

			assert.Equal(t, tc.expectedFactors, w.factors)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestExportIDs(t *testing.T) {
	db, mock := redismock.NewClientMock()
	w := &warmerMock{cachedIDs: []string{"f1", "f2"}}

	mock.ExpectSet(warmUpKey, `["f1","f2"]`, 0).SetVal("OK")

	require.NoError(t, exportIDs(context.Background(), db, w))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStartWarmUpper_WithoutRedis(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := &warmerMock{}

	startWarmUpper(ctx, nil, []string{"aws", "gcp"}, 10*time.Millisecond, w)

	require.Eventually(t, func() bool {
		return w.regionCalls() >= 2
	}, time.Second, 5*time.Millisecond)

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.Equal(t, []string{"aws", "gcp"}, w.regions[0])
	assert.Empty(t, w.factors)
}
