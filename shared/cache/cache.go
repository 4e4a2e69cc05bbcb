package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"clockwise/config"
	"clockwise/infras/otel"
	"clockwise/infras/redis"
	"context"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelCacheKeyAttribute = "cache.key"
	Nil                   = goRedis.Nil
)

// Cache stores JSON encoded values under string keys. Plain strings are stored as is.
// Get wraps Nil when the key is missing or expired.
type Cache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
}

// New picks the backend named by the session store setting.
func New(cfg *config.Config, ot otel.Otel) Cache {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		return NewRedisCache(redis.New(cfg), ot)
	case config.SessionStoreMemory:
		return NewMemoryCache(cfg.Session.MemoryCapacity, ot)
	default:
		log.Warn().Str("store", cfg.Session.Store).Msg("Unknown session store, falling back to memory")

		return NewMemoryCache(cfg.Session.MemoryCapacity, ot)
	}
}

// Limiter holds rate limiter counters apart from sessions, so a burst of new
// clients cannot evict live sessions from a memory store.
type Limiter interface {
	Cache
}

// NewLimiter gives the memory backend its own LRU. Redis is not capacity bound,
// so counters share the session client under their own key prefix.
func NewLimiter(cfg *config.Config, sessions Cache, ot otel.Otel) Limiter {
	if cfg.Session.Store == config.SessionStoreRedis {
		return sessions
	}

	return NewMemoryCache(cfg.App.RateLimiter.MemoryCapacity, ot)
}
