package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/afrovibz/product-images-go/internal/port"
)

// RedisLimiter is a fixed-window counter backed by Redis, so the limit holds
// across instances and memory stays bounded through key expiry.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// compile-time check: *RedisLimiter must satisfy port.RateLimiter
var _ port.RateLimiter = (*RedisLimiter)(nil)

func NewRedisLimiter(addr, password string, limit int, window time.Duration) *RedisLimiter {
	log.Println("initialising redis rate limiter...")
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return &RedisLimiter{client: rdb, limit: limit, window: window}
}

// Allow increments the client's window counter and reports whether the
// request fits. The window is fixed, not sliding: the key expires and the
// next request re-anchors it at count 1. INCR and EXPIRE run in one
// transactional pipeline so the counter can never be left without a TTL,
// and EXPIRE NX keeps later requests from pushing the window back.
func (l *RedisLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	key := limiterKey(clientID)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis rate limit check failed: %w", err)
	}

	return incr.Val() <= int64(l.limit), nil
}

func limiterKey(clientID string) string {
	return "ratelimit:uploads:" + clientID
}
