// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"candidate_admin/internal/platform/db"
	"candidate_admin/internal/platform/redis"
)

// Config holds everything cmd/server needs to start.
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	AllowedOrigins []string
	RunMigrations  bool
	JWTSecret      string
	JWTExpiration  time.Duration
	CacheTTL       time.Duration
	AuthRateLimit  int // /signup と /login への1分あたりのリクエスト上限。0で無効
	DB             db.Config
	Redis          redis.Config
}

// Load reads .env files (when present) and then the process environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		Port:           getenv("PORT", "8080"),
		GinMode:        getenv("GIN_MODE", "debug"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		RunMigrations:  getenv("RUN_MIGRATIONS", "true") == "true",
		JWTSecret:      os.Getenv("JWT_SECRET"),
		DB:             db.LoadConfigFromEnv(),
		Redis:          redis.LoadConfigFromEnv(),
	}

	var err error
	if cfg.JWTExpiration, err = duration("JWT_EXPIRATION", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = duration("CACHE_TTL", 5*time.Minute); err != nil {
		return Config{}, err
	}

	if cfg.AuthRateLimit, err = integer("AUTH_RATE_LIMIT", 10); err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}
	return cfg, nil
}

// Release reports whether gin runs in release mode.
func (c Config) Release() bool {
	return c.GinMode == "release"
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func integer(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
