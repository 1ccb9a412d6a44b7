package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProduct struct {
	ID    string `json:"id"`
	Price string `json:"price"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := config.CacheConfig{DefaultTTL: 10 * time.Minute}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.ProductKeyPrefix, "p-1")
	value := cachedProduct{ID: "p-1", Price: "70.00"}
	jsonData, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(string(jsonData))

		var result cachedProduct

		// Act
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, value, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Cache Miss", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)

		var result cachedProduct

		// Act
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis connection error")
		mock.ExpectGet(key).SetErr(expectedErr)

		var result cachedProduct

		// Act
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unmarshal Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(`{"id": 42}`)

		var result cachedProduct

		// Act
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)

		var jsonErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.ProductKeyPrefix, "p-2")
	value := cachedProduct{ID: "p-2", Price: "100.00"}
	jsonData, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Success - Specific TTL", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectSet(key, jsonData, time.Minute).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, key, value, time.Minute)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Default TTL", func(t *testing.T) {
		// Arrange
		redisCache, mock, cfg := setup(t)
		mock.ExpectSet(key, jsonData, cfg.DefaultTTL).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, key, value, 0)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Marshal Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		// Act
		err := redisCache.Set(ctx, key, make(chan int), time.Minute)

		// Assert
		require.Error(t, err)

		var jsonErr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis SET failed")
		mock.ExpectSet(key, jsonData, time.Minute).SetErr(expectedErr)

		// Act
		err := redisCache.Set(ctx, key, value, time.Minute)

		// Assert
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.ProductKeyPrefix, "p-3")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectDel(key).SetVal(1)

		// Act
		err := redisCache.Delete(ctx, key)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis DEL failed")
		mock.ExpectDel(key).SetErr(expectedErr)

		// Act
		err := redisCache.Delete(ctx, key)

		// Assert
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReadThrough(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.ProductKeyPrefix, "p-4")
	value := cachedProduct{ID: "p-4", Price: "35.00"}
	jsonData, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Success - Hit Skips Loader", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(string(jsonData))

		loader := func(context.Context) (cachedProduct, error) {
			t.Fatal("loader must not be called on a cache hit")
			return cachedProduct{}, nil
		}

		// Act
		got, err := cache.ReadThrough(ctx, redisCache, key, 0, loader)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, value, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Miss Loads And Stores", func(t *testing.T) {
		// Arrange
		redisCache, mock, cfg := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)
		mock.ExpectSet(key, jsonData, cfg.DefaultTTL).SetVal("OK")

		// Act
		got, err := cache.ReadThrough(ctx, redisCache, key, 0, func(context.Context) (cachedProduct, error) {
			return value, nil
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, value, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Redis Down Falls Back To Loader", func(t *testing.T) {
		// Arrange
		redisCache, mock, cfg := setup(t)
		mock.ExpectGet(key).SetErr(errors.New("connection refused"))
		mock.ExpectSet(key, jsonData, cfg.DefaultTTL).SetErr(errors.New("connection refused"))

		// Act
		got, err := cache.ReadThrough(ctx, redisCache, key, 0, func(context.Context) (cachedProduct, error) {
			return value, nil
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, value, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Loader Error Not Cached", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		loadErr := errors.New("not found")
		mock.ExpectGet(key).SetErr(redis.Nil)

		// Act
		_, err := cache.ReadThrough(ctx, redisCache, key, 0, func(context.Context) (cachedProduct, error) {
			return cachedProduct{}, loadErr
		})

		// Assert
		assert.ErrorIs(t, err, loadErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "product:abc", cache.Key(cache.ProductKeyPrefix, "abc"))
	assert.Equal(t, "category:42", cache.Key(cache.CategoryKeyPrefix, "42"))
}
