package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/user-management-api/internal/api/metrics"
)

// RBAC enforces the static per-route authorization policy: the caller's role
// must be in the allow-set. Runs after Auth and before the handler, so a
// denial never reaches validation or the user store.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"message": "forbidden"})
			}
			return next(c)
		}
	}
}
