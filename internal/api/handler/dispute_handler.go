package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// DisputeHandler handles the dispute management view and the reusable
// letter template collection.
type DisputeHandler struct {
	disputes ports.DisputeService
}

func NewDisputeHandler(disputes ports.DisputeService) *DisputeHandler {
	return &DisputeHandler{disputes: disputes}
}

type createTemplateRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

type updateTemplateRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Subject  *string `json:"subject"`
	Content  *string `json:"content"`
	IsActive *bool   `json:"is_active"`
}

// Disputes returns every negative item reshaped into the dispute view.
//
// @Summary      List disputes
// @Tags         disputes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /disputes [get]
func (h *DisputeHandler) Disputes(c echo.Context) error {
	result := h.disputes.Disputes(c.Request().Context())
	return resultJSON(c, http.StatusOK, result)
}

// Templates returns the reusable dispute letter templates.
//
// @Summary      List dispute templates
// @Tags         disputes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /dispute-templates [get]
func (h *DisputeHandler) Templates(c echo.Context) error {
	result := h.disputes.Templates(c.Request().Context())
	return resultJSON(c, http.StatusOK, result)
}

// CreateTemplate stores a new reusable letter.
//
// @Summary      Create a dispute template
// @Tags         disputes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTemplateRequest  true  "New template"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /dispute-templates [post]
func (h *DisputeHandler) CreateTemplate(c echo.Context) error {
	var req createTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.disputes.CreateTemplate(c.Request().Context(), ports.CreateTemplateInput{
		Name:     req.Name,
		Category: req.Category,
		Subject:  req.Subject,
		Content:  req.Content,
	})
	if err != nil {
		return err
	}
	return resultJSON(c, http.StatusCreated, result)
}

// UpdateTemplate applies a partial update to a letter template.
//
// @Summary      Update a dispute template
// @Tags         disputes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        templateId  path      string                 true  "Template id"
// @Param        body        body      updateTemplateRequest  true  "Fields to change"
// @Success      200         {object}  map[string]any
// @Failure      404         {object}  map[string]string
// @Router       /dispute-templates/{templateId} [patch]
func (h *DisputeHandler) UpdateTemplate(c echo.Context) error {
	var req updateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.disputes.UpdateTemplate(c.Request().Context(), c.Param("templateId"), ports.TemplateUpdates{
		Name:     req.Name,
		Category: req.Category,
		Subject:  req.Subject,
		Content:  req.Content,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	if result.Data == nil {
		return domain.ErrTemplateNotFound
	}
	return resultJSON(c, http.StatusOK, result)
}
