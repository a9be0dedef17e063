package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskforge/task-api/internal/infrastructure/config"
)

const pingTimeout = 5 * time.Second

// Connect opens the client shared by the sign-in rate limiter and the
// readiness probe. Connectivity is verified with a ping so a bad address
// fails at boot instead of on the first throttled sign-in.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(options(cfg))

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// options maps the app configuration onto go-redis client options.
func options(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	}
}
