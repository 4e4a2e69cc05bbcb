package cache

import (
	"clockwise/config"
	"clockwise/infras/otel/mocks"
	"context"
	"fmt"
	"testing"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterDoesNotEvictSessions(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.Session.Store = config.SessionStoreMemory
	cfg.App.RateLimiter.MemoryCapacity = 4

	sessions := NewMemoryCache(2, mocks.NewOtel())
	limiter := NewLimiter(cfg, sessions, mocks.NewOtel())

	require.NoError(t, sessions.Save(ctx, "session:a", []string{"Japan/Tokyo"}, 60))

	for i := 0; i < 100; i++ {
		require.NoError(t, limiter.Save(ctx, fmt.Sprintf("limiter:198.51.100.%d:ua", i), 1, 60))
	}

	var labels []string
	require.NoError(t, sessions.Get(ctx, "session:a", &labels))
	assert.Equal(t, []string{"Japan/Tokyo"}, labels)

	var count int
	assert.ErrorIs(t, limiter.Get(ctx, "limiter:198.51.100.0:ua", &count), Nil)
	assert.NoError(t, limiter.Get(ctx, "limiter:198.51.100.99:ua", &count))
}

func TestLimiterSharesRedis(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.Store = config.SessionStoreRedis

	client := goRedis.NewClient(&goRedis.Options{Addr: "localhost:0"})
	defer client.Close()

	sessions := NewRedisCache(client, mocks.NewOtel())

	assert.Same(t, sessions, NewLimiter(cfg, sessions, mocks.NewOtel()))
}
