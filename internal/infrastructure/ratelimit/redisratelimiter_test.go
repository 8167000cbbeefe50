package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "user:1", PerMinute(5))
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "user:1", PerMinute(5))
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	allowed, err = limiter.Allow(ctx, "user:2", PerMinute(5))
	require.NoError(t, err)
	assert.True(t, allowed, "keys are independent")
}

func TestRedisRateLimiter_WindowSlides(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()
	base := time.Now()
	limiter.now = func() time.Time { return base }

	limit := Limit{Requests: 1, Window: time.Second}
	allowed, err := limiter.Allow(ctx, "k", limit)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "k", limit)
	require.NoError(t, err)
	assert.False(t, allowed)

	limiter.now = func() time.Time { return base.Add(2 * time.Second) }
	allowed, err = limiter.Allow(ctx, "k", limit)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "r", PerMinute(1))
	require.NoError(t, err)
	require.NoError(t, limiter.Reset(ctx, "r"))

	allowed, err := limiter.Allow(ctx, "r", PerMinute(1))
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_ZeroLimitAllows(t *testing.T) {
	limiter := NewRedisRateLimiter(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	allowed, err := limiter.Allow(context.Background(), "x", Limit{})
	require.NoError(t, err)
	assert.True(t, allowed)
}
