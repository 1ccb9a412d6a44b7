package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimiter(t *testing.T, now time.Time) (*redisRepository, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := config.RateConfig{MaxAttempts: 3, WindowSize: time.Minute}

	repo := &redisRepository{client: client, cfg: cfg, now: func() time.Time { return now }}

	return repo, mock
}

func expectAttempt(mock redismock.ClientMock, key string, now int64, count int64) {
	mock.ExpectZRemRangeByScore(key, "0", "1699999940").SetVal(0)
	mock.ExpectZAdd(key, redis.Z{Score: float64(now), Member: now}).SetVal(1)
	mock.ExpectZCard(key).SetVal(count)
	mock.ExpectExpire(key, time.Minute).SetVal(true)
}

func TestCheckLoginRateLimit(t *testing.T) {
	now := time.Unix(1700000000, 0)
	email := "user@example.com"
	key := "login_attempts:" + email

	t.Run("Success - Under Limit", func(t *testing.T) {
		// Arrange
		repo, mock := newTestRateLimiter(t, now)
		expectAttempt(mock, key, now.Unix(), 1)

		// Act
		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(t.Context(), email)

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 2, remaining)
		assert.Zero(t, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Last Allowed Attempt", func(t *testing.T) {
		repo, mock := newTestRateLimiter(t, now)
		expectAttempt(mock, key, now.Unix(), 3)

		allowed, remaining, _, err := repo.CheckLoginRateLimit(t.Context(), email)

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Limit Exceeded", func(t *testing.T) {
		// Arrange
		repo, mock := newTestRateLimiter(t, now)
		expectAttempt(mock, key, now.Unix(), 4)
		mock.ExpectZRangeArgsWithScores(redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).
			SetVal([]redis.Z{{Score: float64(now.Unix() - 20), Member: "1699999980"}})

		// Act
		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(t.Context(), email)

		// Assert
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
		assert.Equal(t, 40, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Pipeline Error", func(t *testing.T) {
		// Arrange
		repo, mock := newTestRateLimiter(t, now)
		mock.ExpectZRemRangeByScore(key, "0", "1699999940").SetErr(errors.New("connection reset"))

		// Act
		allowed, _, _, err := repo.CheckLoginRateLimit(t.Context(), email)

		// Assert
		require.Error(t, err)
		assert.False(t, allowed)
	})
}
