package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	sorted := make([]time.Duration, 100)
	for i := range sorted {
		sorted[i] = time.Duration(i+1) * time.Millisecond
	}

	testCases := []struct {
		name     string
		input    []time.Duration
		p        float64
		expected time.Duration
	}{
		{name: "empty", input: nil, p: 0.99, expected: 0},
		{name: "single", input: []time.Duration{time.Second}, p: 0.5, expected: time.Second},
		{name: "median", input: sorted, p: 0.50, expected: 50 * time.Millisecond},
		{name: "p99", input: sorted, p: 0.99, expected: 99 * time.Millisecond},
		{name: "max", input: sorted, p: 1, expected: 100 * time.Millisecond},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, percentile(tc.input, tc.p))
		})
	}
}

func TestStats(t *testing.T) {
	s := &stats{statuses: map[int]int{}}
	s.observe(200, time.Millisecond)
	s.observe(200, 2*time.Millisecond)
	s.observe(502, 3*time.Millisecond)
	s.fail(time.Second)

	assert.Equal(t, map[int]int{200: 2, 502: 1}, s.statuses)
	assert.Equal(t, 1, s.failed)
	assert.Len(t, s.latencies, 4)
}

func TestTargets(t *testing.T) {
	targets := newTargets("http://proxy", 0)
	assert.Equal(t, 1, targets.factorIDs)

	for i := 0; i < 50; i++ {
		url := targets.next()
		ok := strings.HasSuffix(url, "/regions") || url == "http://proxy/api/v1/emission-factors/factor-0"
		assert.True(t, ok, url)
	}
}
