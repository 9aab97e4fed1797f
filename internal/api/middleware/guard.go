package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Default redirect targets for the route guards.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Protected guards a route behind authentication and, when allowedRoles is
// non-empty, behind role membership. Unauthenticated requests are redirected
// to the login page; authenticated but under-privileged requests to the
// default dashboard.
func Protected(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}
			if len(allowed) > 0 {
				if _, ok := allowed[role]; !ok {
					return c.Redirect(http.StatusSeeOther, DashboardPath)
				}
			}
			return next(c)
		}
	}
}

// PublicOnly guards routes meaningful only to anonymous visitors, sending an
// already-authenticated user to the dashboard.
func PublicOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get(CtxRole).(string); role != "" {
				return c.Redirect(http.StatusSeeOther, DashboardPath)
			}
			return next(c)
		}
	}
}
