package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"time"

	"footprint/internal/env"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	env.LoadEnv()
	if os.Getenv("NEED_TEST") != "true" {
		return
	}

	concurrency := flag.Int("concurrency", 100, "Number of concurrent workers")
	duration := flag.Duration("duration", 5*time.Second, "Duration of the load test")
	factorIDs := flag.Int("factorIds", 1000, "Number of distinct emission factor ids requested")
	flag.Parse()

	targets := newTargets(env.GetEnv("TARGET_URL", "http://localhost:8080"), *factorIDs)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	log.Info().
		Str("target", targets.baseURL).
		Int("concurrency", *concurrency).
		Dur("duration", *duration).
		Msg("Starting load test")

	s := &stats{statuses: map[int]int{}}
	started := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	client := &http.Client{}
	for i := 0; i < *concurrency; i++ {
		g.Go(func() error {
			hammer(ctx, client, targets, s)
			return nil
		})
	}
	_ = g.Wait()

	s.report(time.Since(started))
}

// hammer sends requests one after another until ctx is done
func hammer(ctx context.Context, client *http.Client, targets *targets, s *stats) {
	for ctx.Err() == nil {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, targets.next(), nil)
		if err != nil {
			log.Error().Err(err).Msg("Error creating request")
			return
		}

		start := time.Now()
		resp, err := client.Do(req)
		elapsed := time.Since(start)
		if err != nil {
			// requests cut by the end of the run are not failures
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return
			}
			s.fail(elapsed)
			log.Error().Err(err).Msg("Error sending request")
			continue
		}
		_ = resp.Body.Close()
		s.observe(resp.StatusCode, elapsed)
	}
}
