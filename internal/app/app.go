package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"footprint/internal/climatiq"
	"footprint/internal/config"
	climatiqdto "footprint/internal/dto/climatiq_dto"
	"footprint/internal/env"
	"footprint/internal/handler"
	"footprint/internal/metrics"
	"footprint/internal/middleware"
	"footprint/internal/schema"
	"footprint/internal/service"
	"footprint/internal/storage"
	"footprint/internal/storage/lru_cache"
	redisStorage "footprint/internal/storage/redis"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct{}

const (
	successCode = 0
	failureCode = 1

	regionsCacheSize = 64
	shutdownTimeout  = 10 * time.Second
)

func New() *App {
	return &App{}
}

// SetupLogger points the global logger to a console writer on out
func SetupLogger(out io.Writer, level zerolog.Level) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
}

func (a *App) Run() (exitCode int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	SetupLogger(os.Stdout, zerolog.InfoLevel)
	env.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("couldn't load config")
		return failureCode
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	client, err := climatiq.NewClient(cfg.BaseURL, cfg.APIKey,
		climatiq.WithTimeout(cfg.Timeout),
		climatiq.WithDataVersion(cfg.DataVersion),
		climatiq.WithLogger(log.Logger),
	)
	if err != nil {
		log.Error().Err(err).Msg("couldn't initialize a climatiq client")
		return failureCode
	}

	m := metrics.New()
	factors := storage.New[climatiqdto.Factor]("emission_factors",
		lru_cache.NewLRUCache[string, climatiqdto.Factor](cfg.LRUCacheSize, cfg.CacheTTL),
		m,
	)
	regions := storage.New[[]schema.Region]("regions",
		lru_cache.NewLRUCache[string, []schema.Region](regionsCacheSize, cfg.CacheTTL),
		m,
	)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redisStorage.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("couldn't close redis")
			}
		}()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis is unreachable, serving from local cache only until it's back")
		}
		factors.WithRedis(redisStorage.New[climatiqdto.Factor](ctx, rdb,
			"footprint:emission_factors",
			cfg.CacheTTL,
			redisStorage.MarshalJSON[climatiqdto.Factor],
			redisStorage.UnmarshalJSON[climatiqdto.Factor],
			cfg.RedisChanSize,
		))
		regions.WithRedis(redisStorage.New[[]schema.Region](ctx, rdb,
			"footprint:regions",
			cfg.CacheTTL,
			redisStorage.MarshalJSON[[]schema.Region],
			redisStorage.UnmarshalJSON[[]schema.Region],
			cfg.RedisChanSize,
		))
	}

	emissionService := service.New(client, factors, regions)

	startWarmUpper(ctx, rdb, cfg.WarmupProviders, cfg.WarmupPeriod, emissionService)

	api := http.NewServeMux()
	handler.New(emissionService, m, cfg.RequestTimeout).Register(api)

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.Handle("/", middleware.RequestID(middleware.AccessLog(m)(middleware.JsonMiddleware(api))))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("addr", server.Addr).Msg("starting proxy")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server crashed")
		return failureCode
	}
	<-shutdownDone

	return successCode
}
