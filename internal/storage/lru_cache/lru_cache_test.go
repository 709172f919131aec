package lru_cache

import (
	"testing"
	"time"
)

// TestNewLRUCache verifies that a newly created cache is empty and has the correct capacity.
func TestNewLRUCache(t *testing.T) {
	cache := NewLRUCache[string, int](5, time.Minute)
	if cache.capacity != 5 {
		t.Errorf("expected capacity 5, got %d", cache.capacity)
	}
	if len(cache.items) != 0 {
		t.Errorf("expected empty items, got %d", len(cache.items))
	}
	if cache.order.Len() != 0 {
		t.Errorf("expected empty order, got %d", cache.order.Len())
	}

	if c := NewLRUCache[string, int](0, 0); c.capacity != 1 {
		t.Errorf("expected capacity to be raised to 1, got %d", c.capacity)
	}
}

// TestLRUCache_SetAndGet checks that setting and then getting a Key returns the expected Value.
func TestLRUCache_SetAndGet(t *testing.T) {
	testCases := []struct {
		name          string
		key           string
		value         int
		priority      int
		updatedKey    string // if non-empty, update the same Key with new Value/Priority
		updatedValue  int
		updatedPrio   int
		expectedValue int
	}{
		{
			name:          "Simple Set and Get",
			key:           "a",
			value:         1,
			priority:      1,
			expectedValue: 1,
		},
		{
			name:          "Update existing Key",
			key:           "a",
			value:         1,
			priority:      1,
			updatedKey:    "a",
			updatedValue:  2,
			updatedPrio:   0,
			expectedValue: 2,
		},
	}

	cache := NewLRUCache[string, int](5, time.Minute)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cache.Set(tc.key, tc.value, tc.priority)
			if tc.updatedKey != "" {
				cache.Set(tc.updatedKey, tc.updatedValue, tc.updatedPrio)
			}
			val, ok := cache.Get(tc.key)
			if !ok {
				t.Fatalf("expected Key %q to be found", tc.key)
			}
			if val != tc.expectedValue {
				t.Errorf("expected Value %d, got %d", tc.expectedValue, val)
			}
		})
	}
}

// TestLRUCache_Delete verifies that after deletion a Key is no longer available.
func TestLRUCache_Delete(t *testing.T) {
	cache := NewLRUCache[string, int](5, time.Minute)
	cache.Set("a", 1, 1)
	cache.Delete("a")
	if _, ok := cache.Get("a"); ok {
		t.Error("expected Key 'a' to be deleted")
	}
	if cache.Len() != 0 {
		t.Errorf("expected empty cache, got %d", cache.Len())
	}
}

// TestLRUCache_Eviction verifies that the least recently used entry of max priority leaves first.
func TestLRUCache_Eviction(t *testing.T) {
	cache := NewLRUCache[string, int](2, time.Minute)
	cache.Set("warm", 1, 0)
	cache.Set("b", 2, 1)
	cache.Set("c", 3, 1)

	if _, ok := cache.Get("b"); ok {
		t.Error("expected Key 'b' to be evicted")
	}
	if val, ok := cache.Get("warm"); !ok || val != 1 {
		t.Errorf("expected Key 'warm' to be present with Value 1, got %v", val)
	}
	if val, ok := cache.Get("c"); !ok || val != 3 {
		t.Errorf("expected Key 'c' to be present with Value 3, got %v", val)
	}
}

// TestLRUCache_Expiry verifies that entries older than the ttl are neither returned nor listed.
func TestLRUCache_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewLRUCache[string, int](2, time.Hour)
	cache.now = func() time.Time { return now }

	cache.Set("a", 1, 0)
	now = now.Add(30 * time.Minute)
	cache.Set("b", 2, 1)

	if _, ok := cache.Get("a"); !ok {
		t.Fatal("expected Key 'a' to be alive")
	}

	now = now.Add(45 * time.Minute)
	if _, ok := cache.Get("a"); ok {
		t.Error("expected Key 'a' to be expired")
	}
	if keys := cache.Keys(); len(keys) != 1 || keys[0] != "b" {
		t.Errorf("expected keys [b], got %v", keys)
	}

	// an expired entry is evicted before the least recently used live one
	cache.Set("c", 3, 1)
	if _, ok := cache.Get("b"); !ok {
		t.Fatal("expected Key 'b' to be alive")
	}
	now = now.Add(31 * time.Minute)
	cache.Set("d", 4, 1)
	if _, ok := cache.Get("b"); ok {
		t.Error("expected Key 'b' to be evicted")
	}
	if _, ok := cache.Get("c"); !ok {
		t.Error("expected Key 'c' to survive eviction")
	}
	if _, ok := cache.Get("d"); !ok {
		t.Error("expected Key 'd' to be present")
	}
}

// TestLRUCache_NoTTL verifies that a zero ttl keeps entries forever.
func TestLRUCache_NoTTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewLRUCache[string, int](2, 0)
	cache.now = func() time.Time { return now }

	cache.Set("a", 1, 1)
	now = now.Add(24 * 365 * time.Hour)
	if _, ok := cache.Get("a"); !ok {
		t.Error("expected Key 'a' to be present")
	}
}
