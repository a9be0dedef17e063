package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/api/middleware"
	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// ctxClaim extracts the claim injected by the Auth middleware. Its presence
// proves the middleware ran; a missing claim on a protected route is a
// wiring bug surfaced as 401, not 500.
func ctxClaim(c echo.Context) (domain.Claim, error) {
	claim, ok := middleware.ClaimFrom(c)
	if !ok {
		return domain.Claim{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claim, nil
}

// pageRequest parses the shared pageNumber/pageSize query parameters.
// Absent or non-numeric values come back as zero; the service layer applies
// the defaults.
func pageRequest(c echo.Context) ports.PageRequest {
	number, _ := strconv.Atoi(c.QueryParam("pageNumber"))
	size, _ := strconv.Atoi(c.QueryParam("pageSize"))
	return ports.PageRequest{Number: number, Size: size}
}
