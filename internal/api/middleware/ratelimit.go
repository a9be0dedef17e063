package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/api/metrics"
)

// Limiter decides whether an identifier may proceed. Implemented by the
// Redis fixed-window limiter.
type Limiter interface {
	Allow(ctx context.Context, ident string) (bool, error)
}

// RateLimit rejects requests exceeding the limiter's window, keyed by client
// IP. Limiter errors fail open: availability over strictness when Redis is
// unreachable.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
