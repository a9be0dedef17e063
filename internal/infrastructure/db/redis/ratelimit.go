package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter is a fixed-window rate limiter backed by Redis
// INCR/EXPIRE. Key format: rl:<window_seconds>:<identifier>.
type FixedWindowLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

func NewFixedWindowLimiter(client *redis.Client, max int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, max: int64(max), window: window}
}

// Allow reports whether the identifier may proceed within the current
// window. The first hit of a window sets the key's expiry.
func (l *FixedWindowLimiter) Allow(ctx context.Context, ident string) (bool, error) {
	key := fmt.Sprintf("rl:%d:%s", int64(l.window.Seconds()), ident)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		l.client.Expire(ctx, key, l.window)
	}

	return n <= l.max, nil
}
