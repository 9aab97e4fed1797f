package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/api/middleware"
	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
	"github.com/creditfix/credit-repair-api/internal/core/state"
)

// AuthHandler handles the sign-in lifecycle against the auth state store.
type AuthHandler struct {
	store *state.Store
	auth  ports.AuthService
}

func NewAuthHandler(store *state.Store, auth ports.AuthService) *AuthHandler {
	return &AuthHandler{store: store, auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Login authenticates a user and returns the session token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, errMsg := h.store.Login(c.Request().Context(), req.Email, req.Password)
	if result == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errMsg)
	}

	return c.JSON(http.StatusOK, loginResponse{
		User:  result.User,
		Token: result.Token,
	})
}

// Logout ends the current session. Always succeeds from the caller's view.
//
// @Summary      Sign out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := stringClaim(c, middleware.CtxToken)
	if token != "" {
		h.store.Logout(c.Request().Context(), token)
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the user behind the presented session token.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user := h.auth.GetCurrentUser(c.Request().Context(), cl.Token)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
	}
	return c.JSON(http.StatusOK, user)
}
