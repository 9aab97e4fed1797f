package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// ReportHandler serves the dashboard and reports views.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Dashboard returns the caseload overview.
//
// @Summary      Dashboard statistics
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	result := h.reports.Dashboard(c.Request().Context())
	return resultJSON(c, http.StatusOK, result)
}

// Reports returns per-client progress. With client_id set, a single client's
// progress row; otherwise the full caseload report.
//
// @Summary      Progress reports
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query  string  false  "Report on one client"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /reports [get]
func (h *ReportHandler) Reports(c echo.Context) error {
	if clientID := c.QueryParam("client_id"); clientID != "" {
		result := h.reports.ClientProgress(c.Request().Context(), clientID)
		if result.Data == nil {
			return domain.ErrClientNotFound
		}
		return resultJSON(c, http.StatusOK, result)
	}

	result := h.reports.Dashboard(c.Request().Context())
	return resultJSON(c, http.StatusOK, result)
}
