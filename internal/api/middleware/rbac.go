package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/core/domain"
)

// RBAC enforces role-based access control on routes that declare required
// roles. With no required roles every authenticated claim is allowed; the
// role check is opt-in per operation.
func RBAC(requiredRoles ...domain.Role) echo.MiddlewareFunc {
	required := make(map[domain.Role]struct{}, len(requiredRoles))
	for _, r := range requiredRoles {
		required[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claim, ok := ClaimFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			if len(required) == 0 {
				return next(c)
			}
			if _, allowed := required[claim.Role]; !allowed {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
