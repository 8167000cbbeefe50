package ratelimit

import (
	"context"
	"time"
)

// Limit allows Requests calls per sliding Window.
type Limit struct {
	Requests int
	Window   time.Duration
}

func PerMinute(n int) Limit {
	return Limit{Requests: n, Window: time.Minute}
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit Limit) (bool, error)
	Reset(ctx context.Context, key string) error
}
