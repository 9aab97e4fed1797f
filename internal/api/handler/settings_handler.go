package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// SettingsHandler serves the signed-in user's profile settings.
type SettingsHandler struct {
	auth ports.AuthService
}

func NewSettingsHandler(auth ports.AuthService) *SettingsHandler {
	return &SettingsHandler{auth: auth}
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

// Get returns the signed-in user's profile.
//
// @Summary      Profile settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
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

// Update applies partial profile changes for the signed-in user.
//
// @Summary      Update profile settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /settings [patch]
func (h *SettingsHandler) Update(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result := h.auth.UpdateProfile(c.Request().Context(), cl.UserID, ports.UserUpdates{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
	})
	return resultJSON(c, http.StatusOK, result)
}
