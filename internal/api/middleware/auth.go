package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// ClaimKey is the echo context key under which the validated claim is stored.
const ClaimKey = "claim"

// Auth extracts the bearer token, validates it through the token validator
// (which re-resolves the user), and injects the resulting claim into the
// request context. Requests without a valid, live claim never reach the
// handler.
func Auth(validator ports.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claim, err := validator.ValidateToken(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ClaimKey, claim)
			return next(c)
		}
	}
}

// ClaimFrom returns the claim injected by Auth, if any.
func ClaimFrom(c echo.Context) (domain.Claim, bool) {
	claim, ok := c.Get(ClaimKey).(domain.Claim)
	return claim, ok
}
