// Package config assembles process configuration from the environment.
package config

import (
	"errors"
	"time"

	"footprint/internal/env"

	"github.com/rs/zerolog"
)

var (
	// ErrMissingAPIKey is returned when CLIMATIQ_API_KEY is not set.
	ErrMissingAPIKey = errors.New("CLIMATIQ_API_KEY is not set")
)

const (
	DefaultBaseURL     = "https://api.climatiq.io"
	DefaultDataVersion = "^21"
)

// Config holds everything the client, the proxy and the CLI need.
type Config struct {
	APIKey      string
	BaseURL     string
	DataVersion string
	Timeout     time.Duration
	LogLevel    zerolog.Level

	Port           string
	RequestTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisChanSize int

	LRUCacheSize int
	CacheTTL     time.Duration

	WarmupProviders []string
	WarmupPeriod    time.Duration
}

// Load reads the configuration. The api key is read once here and never again.
func Load() (Config, error) {
	cfg := Config{
		APIKey:          env.GetEnv("CLIMATIQ_API_KEY", ""),
		BaseURL:         env.GetEnv("CLIMATIQ_BASE_URL", DefaultBaseURL),
		DataVersion:     env.GetEnv("CLIMATIQ_DATA_VERSION", DefaultDataVersion),
		Port:            env.GetEnv("PORT", "8080"),
		RedisAddr:       env.GetEnv("REDIS_ADDR", ""),
		RedisPassword:   env.GetEnv("REDIS_PASSWORD", ""),
		WarmupProviders: env.GetList("WARMUP_PROVIDERS", []string{"aws", "gcp", "azure"}),
	}
	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	level, err := zerolog.ParseLevel(env.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	if cfg.Timeout, err = env.GetDuration("CLIMATIQ_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = env.GetDuration("REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = env.GetDuration("CACHE_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.WarmupPeriod, err = env.GetDuration("WARMUP_PERIOD", 6*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = env.GetInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.RedisChanSize, err = env.GetInt("REDIS_CHAN_SIZE", 1000); err != nil {
		return Config{}, err
	}
	if cfg.LRUCacheSize, err = env.GetInt("LRU_CACHE_SIZE", 1000); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
