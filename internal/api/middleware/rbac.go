package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/poscentral/website-api/internal/core/domain"
)

// RequireRole enforces a minimum role on routes behind Auth. super_admin
// satisfies an admin requirement; the reverse does not hold.
func RequireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return domain.ErrUnauthenticated
			}
			if !domain.RoleSatisfies(role, required) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
