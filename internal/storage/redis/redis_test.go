package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"footprint/internal/schema"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMarshal and testUnmarshal are identity functions for string.
func testMarshal(s string) (string, error) {
	return s, nil
}

func testUnmarshal(str string) (string, error) {
	return str, nil
}

func TestClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := New[string](context.Background(), db, "test", time.Minute, testMarshal, testUnmarshal, 10)

	mock.ExpectSet("test:testKey", "testValue", time.Minute).SetVal("OK")

	err := client.Set(context.Background(), "testKey", "testValue")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Get(t *testing.T) {
	testCases := []struct {
		name          string
		setup         func(mock redismock.ClientMock)
		expectedValue string
		expectedFound bool
		wantErr       bool
	}{
		{
			name: "found",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("test:testKey").SetVal("testValue")
			},
			expectedValue: "testValue",
			expectedFound: true,
		},
		{
			name: "absent key is not an error",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("test:testKey").RedisNil()
			},
		},
		{
			name: "redis down",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("test:testKey").SetErr(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := New[string](context.Background(), db, "test", time.Minute, testMarshal, testUnmarshal, 10)
			tc.setup(mock)

			val, found, err := client.Get(context.Background(), "testKey")
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expectedFound, found)
			assert.Equal(t, tc.expectedValue, val)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestClient_JSONCodec(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := New[[]schema.Region](context.Background(), db, "regions", time.Hour,
		MarshalJSON[[]schema.Region], UnmarshalJSON[[]schema.Region], 10)

	regions := []schema.Region{{ID: "eu-west-1", Name: "EU (Ireland)"}}
	mock.ExpectSet("regions:aws", `[{"id":"eu-west-1","name":"EU (Ireland)"}]`, time.Hour).SetVal("OK")
	mock.ExpectGet("regions:gcp").SetVal(`[{"id":"us-east1","name":"US East (South Carolina)"}]`)
	mock.ExpectGet("regions:azure").SetVal(`not json`)

	require.NoError(t, client.Set(context.Background(), "aws", regions))

	got, found, err := client.Get(context.Background(), "gcp")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []schema.Region{{ID: "us-east1", Name: "US East (South Carolina)"}}, got)

	_, found, err = client.Get(context.Background(), "azure")
	require.Error(t, err)
	assert.False(t, found)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Update(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := New[string](ctx, db, "test", time.Minute, testMarshal, testUnmarshal, 1)

	// the second value may overflow the channel and arrive first
	mock.MatchExpectationsInOrder(false)
	mock.ExpectSet("test:k1", "v1", time.Minute).SetVal("OK")
	mock.ExpectSet("test:k2", "v2", time.Minute).SetVal("OK")

	client.Update("k1", "v1")
	client.Update("k2", "v2")

	require.Eventually(t, func() bool {
		return mock.ExpectationsWereMet() == nil
	}, time.Second, 10*time.Millisecond)
}
