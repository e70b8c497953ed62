package server

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the HTTP server configuration. All fields can be set from
// the environment via FromEnv; a .env file in the working directory is
// loaded first when present.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	AllowedOrigins []string

	// CacheNamespace prefixes every cache key, keeping deployments that
	// share a Redis instance apart.
	CacheNamespace string

	RateLimit RateLimitConfig
}

// RateLimitConfig controls the per-client token bucket limiter.
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
	TrustProxy        bool
}

// DefaultConfig returns a Config suitable for local development.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		AllowedOrigins: []string{"*"},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 10,
			BurstSize:         20,
		},
	}
}

// FromEnv builds a Config from JYOTISH_* environment variables, loading a
// .env file first if one exists. Missing variables keep their defaults.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv("JYOTISH_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("JYOTISH_ALLOWED_ORIGIN"); v != "" {
		cfg.AllowedOrigins = []string{v}
	}
	cfg.CacheNamespace = os.Getenv("JYOTISH_CACHE_NAMESPACE")
	cfg.RateLimit.Enabled = envBool("JYOTISH_RATE_LIMIT", cfg.RateLimit.Enabled)
	cfg.RateLimit.TrustProxy = envBool("JYOTISH_TRUST_PROXY", cfg.RateLimit.TrustProxy)
	cfg.RateLimit.RequestsPerSecond = envFloat("JYOTISH_RATE_LIMIT_RPS", cfg.RateLimit.RequestsPerSecond)
	cfg.RateLimit.BurstSize = envInt("JYOTISH_RATE_LIMIT_BURST", cfg.RateLimit.BurstSize)
	return cfg
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
