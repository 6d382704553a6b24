package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mangesh636/rbac-backend/internal/api/metrics"
)

// RBAC enforces role-based access control. The allowed set is built once at
// route registration; each request only pays a map lookup.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				metrics.AccessDeniedTotal.WithLabelValues(c.Path()).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Access denied")
			}
			return next(c)
		}
	}
}
