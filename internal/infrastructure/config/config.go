package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting, loaded once at startup and never
// mutated. The JWT secret is handed to the token service at construction;
// nothing else reads it.
type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET, required"`

	// TokenTTL is the access-token lifetime. The reference policy is 720
	// minutes from issuance.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=720m"`

	Postgres  PostgresConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/taskapi?sslmode=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig bounds sign-in attempts per client IP over a fixed window.
type RateLimitConfig struct {
	MaxRequests int           `env:"RATE_LIMIT_MAX,    default=10"`
	Window      time.Duration `env:"RATE_LIMIT_WINDOW, default=1m"`
}

// AdminConfig seeds an initial administrator on first boot. Seeding is
// skipped when Email is empty or the account already exists.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
	Name     string `env:"ADMIN_NAME, default=admin"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
