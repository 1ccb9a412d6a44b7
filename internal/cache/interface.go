package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	ProductKeyPrefix  = "product"
	CategoryKeyPrefix = "category"
)

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

// ReadThrough serves key from c when present, otherwise calls load and caches
// its result. Cache failures are logged and never fail the read.
func ReadThrough[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	logger := middleware.LoggerFromContext(ctx)

	var cached T

	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Cache read failed", slog.String("key", key), slog.Any("error", err))
	} else if found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		logger.Warn("Cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}
