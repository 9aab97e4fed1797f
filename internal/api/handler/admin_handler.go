package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/api/metrics"
	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// AdminHandler serves the admin panel: the user roster plus caseload stats.
// The roster read follows the same degradation rule as the entity services:
// a backend failure substitutes the bundled user records.
type AdminHandler struct {
	users   ports.UserRepository
	local   ports.LocalStore
	reports ports.ReportService
}

func NewAdminHandler(users ports.UserRepository, local ports.LocalStore, reports ports.ReportService) *AdminHandler {
	return &AdminHandler{users: users, local: local, reports: reports}
}

type adminPanel struct {
	Users []*domain.User        `json:"users"`
	Stats *ports.DashboardStats `json:"stats"`
}

// Panel returns the admin panel data.
//
// @Summary      Admin panel
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /admin [get]
func (h *AdminHandler) Panel(c echo.Context) error {
	ctx := c.Request().Context()

	var result domain.Result[adminPanel]
	users, err := h.users.List(ctx)
	if err != nil {
		metrics.RemoteErrorsTotal.WithLabelValues("users", "list").Inc()
		metrics.FallbacksTotal.WithLabelValues("users", "local").Inc()
		result = domain.Degraded(adminPanel{Users: h.local.Users()}, err)
	} else {
		result = domain.Remote(adminPanel{Users: users})
	}

	stats := h.reports.Dashboard(ctx)
	result.Data.Stats = stats.Data
	if stats.FromFallback() {
		result.Source = domain.SourceFallback
	}

	return resultJSON(c, http.StatusOK, result)
}
