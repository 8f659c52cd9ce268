package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Not parallel: modifies environment variables.
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "2")

	cfg := LoadConfigFromEnv()
	assert.Equal(t, Config{Host: "cache", Port: "6379", Password: "secret", DB: 2}, cfg)
	assert.Equal(t, "cache:6379", cfg.Addr())
}

func TestNewRedisClient_NotConfigured(t *testing.T) {
	t.Parallel()

	rdb, err := NewRedisClient(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, rdb)
}
