package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window counter backed by Redis, shared across
// server instances. Keys expire with the window so idle clients cost nothing.
type RedisLimiter struct {
	rdb    *redis.Client
	prefix string
	window time.Duration
	max    int
}

// NewRedisLimiter creates a Redis-backed limiter with the given window length
// and per-window ceiling.
func NewRedisLimiter(rdb *redis.Client, window time.Duration, max int) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		prefix: "contact:ratelimit:",
		window: window,
		max:    max,
	}
}

var _ Limiter = (*RedisLimiter)(nil)

// Allow increments the key's window counter and admits the request while the
// counter is within the ceiling. The first increment starts the window by
// setting the key TTL.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + key
	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return true, err
	}
	if n == 1 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return true, err
		}
	}
	return n <= int64(l.max), nil
}
