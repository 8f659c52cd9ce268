// Package redis builds the go-redis client used by the cache layer.
package redis

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured is returned when no Redis host is set.
var ErrNotConfigured = errors.New("redis is not configured")

// Config はRedis接続設定です。
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// LoadConfigFromEnv は環境変数からRedis設定を読み込みます。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     os.Getenv("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
	if cfg.Port == "" {
		cfg.Port = "6379"
	}
	if n, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
		cfg.DB = n
	}
	return cfg
}

// NewRedisClient は接続を確認したクライアントを返します。
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, ErrNotConfigured
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 接続確認
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr(), "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr())
	return rdb, nil
}
