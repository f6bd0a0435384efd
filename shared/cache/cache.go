package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"fmt"
	"reservo/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

// Counter is a fixed-window counter store.
type Counter interface {
	// Increment adds one to key and returns the new value. The key expires
	// windowSeconds after it was first created.
	Increment(ctx context.Context, key string, windowSeconds int) (int64, error)
}

type redisCounter struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCounter(client *redis.Client, ot otel.Otel) Counter {
	return &redisCounter{
		client: client,
		otel:   ot,
	}
}

// Increment implements Counter.
func (cache *redisCounter) Increment(ctx context.Context, key string, windowSeconds int) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	pipe := cache.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, time.Duration(windowSeconds)*time.Second)

	if _, err = pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCounter", "Increment").Msg("failed to increment counter")

		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	return incr.Val(), nil
}
