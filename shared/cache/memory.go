package cache

import (
	"clockwise/infras/otel"
	"clockwise/shared/constant"
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
)

const defaultMemoryCapacity = 1024

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// memoryCache keeps values in a bounded LRU. Least recently used keys are evicted
// once capacity is reached, expired keys on access.
type memoryCache struct {
	entries *lru.Cache[string, memoryEntry]
	otel    otel.Otel
	now     func() time.Time
}

func NewMemoryCache(capacity int, ot otel.Otel) Cache {
	return newMemoryCache(capacity, ot, time.Now)
}

func newMemoryCache(capacity int, ot otel.Otel, now func() time.Time) *memoryCache {
	if capacity <= 0 {
		capacity = defaultMemoryCapacity
	}

	entries, err := lru.New[string, memoryEntry](capacity)
	if err != nil {
		log.Fatal().Err(err).Int("capacity", capacity).Msg("Failed to create memory cache")
	}

	return &memoryCache{
		entries: entries,
		otel:    ot,
		now:     now,
	}
}

// Save implements Cache.
func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	_, scope := cache.otel.NewScope(ctx, constant.OtelCacheScopeName, constant.OtelCacheScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	data, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("MemoryCache", "Save").Msg("failed to marshal cache")

		return err
	}

	entry := memoryEntry{data: data}
	if duration > 0 {
		entry.expiresAt = cache.now().Add(time.Duration(duration) * time.Second)
	}

	cache.entries.Add(key, entry)

	return nil
}

// Get implements Cache.
func (cache *memoryCache) Get(ctx context.Context, key string, value any) (err error) {
	_, scope := cache.otel.NewScope(ctx, constant.OtelCacheScopeName, constant.OtelCacheScopeName+".Get")
	defer scope.End()
	defer func() {
		if !errors.Is(err, Nil) {
			scope.TraceIfError(err)
		}
	}()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	entry, ok := cache.entries.Get(key)
	if !ok {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	if entry.expired(cache.now()) {
		cache.entries.Remove(key)

		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	return decode(entry.data, value)
}

// Delete implements Cache.
func (cache *memoryCache) Delete(ctx context.Context, key string) error {
	_, scope := cache.otel.NewScope(ctx, constant.OtelCacheScopeName, constant.OtelCacheScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cache.entries.Remove(key)

	return nil
}
