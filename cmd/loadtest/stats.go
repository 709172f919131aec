package main

import (
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type stats struct {
	mu        sync.Mutex
	latencies []time.Duration
	statuses  map[int]int
	failed    int
}

func (s *stats) observe(status int, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latencies = append(s.latencies, elapsed)
	s.statuses[status]++
}

func (s *stats) fail(elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latencies = append(s.latencies, elapsed)
	s.failed++
}

// percentile expects sorted latencies, p in (0, 1]
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	i := int(float64(len(sorted))*p+0.5) - 1
	return sorted[min(max(i, 0), len(sorted)-1)]
}

func (s *stats) report(total time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := slices.Clone(s.latencies)
	slices.Sort(sorted)

	for status, n := range s.statuses {
		log.Info().Int("status", status).Int("requests", n).Msg("Responses by status")
	}
	log.Info().
		Int("total_requests", len(sorted)).
		Int("failed_requests", s.failed).
		Float64("rps", float64(len(sorted))/total.Seconds()).
		Str("p50", percentile(sorted, 0.50).String()).
		Str("p95", percentile(sorted, 0.95).String()).
		Str("p99", percentile(sorted, 0.99).String()).
		Msg("Load test completed")
}
