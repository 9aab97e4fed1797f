package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// EducationHandler serves the static knowledge-base catalog.
type EducationHandler struct {
	education ports.EducationService
}

func NewEducationHandler(education ports.EducationService) *EducationHandler {
	return &EducationHandler{education: education}
}

// Catalog returns the knowledge-base articles.
//
// @Summary      Education catalog
// @Tags         education
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.EducationContent
// @Router       /education [get]
func (h *EducationHandler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, h.education.Catalog())
}
