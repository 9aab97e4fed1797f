package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/api/middleware"
)

// claims holds the identity the Auth middleware extracted from the bearer
// token. Handlers that run behind a route guard can assume Role is set.
type claims struct {
	UserID string
	Email  string
	Role   string
	Token  string
}

// ctxClaims reads the auth claims injected by the Auth middleware. Routes
// behind a guard always carry a role; a missing one means the handler was
// wired without its guard, which is a 401 rather than a panic.
func ctxClaims(c echo.Context) (claims, error) {
	cl := claims{
		UserID: stringClaim(c, middleware.CtxUserID),
		Email:  stringClaim(c, middleware.CtxEmail),
		Role:   stringClaim(c, middleware.CtxRole),
		Token:  stringClaim(c, middleware.CtxToken),
	}
	if cl.Role == "" {
		return claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return cl, nil
}

func stringClaim(c echo.Context, key string) string {
	s, _ := c.Get(key).(string)
	return s
}
