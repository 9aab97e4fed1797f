package api

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/creditfix/credit-repair-api/internal/api/handler"
	"github.com/creditfix/credit-repair-api/internal/api/middleware"
	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
	"github.com/creditfix/credit-repair-api/internal/core/state"
	"github.com/creditfix/credit-repair-api/pkg/logger"
)

// Dependencies carries everything the router needs, built once in main.
type Dependencies struct {
	DB    *sql.DB
	Redis *redis.Client

	JWTSecret string

	AuthState *state.Store
	Auth      ports.AuthService
	Clients   ports.ClientService
	Scores    ports.ScoreService
	Items     ports.NegativeItemService
	Disputes  ports.DisputeService
	Documents ports.DocumentService
	Comms     ports.CommunicationService
	Reports   ports.ReportService
	Education ports.EducationService

	Users ports.UserRepository
	Local ports.LocalStore
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Component("http"))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("creditrepair"))
	e.Use(middleware.Auth(deps.JWTSecret))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthState, deps.Auth)
	clientHandler := handler.NewClientHandler(deps.Clients, deps.Scores, deps.Items)
	disputeHandler := handler.NewDisputeHandler(deps.Disputes)
	documentHandler := handler.NewDocumentHandler(deps.Documents)
	reportHandler := handler.NewReportHandler(deps.Reports)
	portalHandler := handler.NewPortalHandler(deps.Clients, deps.Scores, deps.Items, deps.Comms)
	adminHandler := handler.NewAdminHandler(deps.Users, deps.Local, deps.Reports)
	educationHandler := handler.NewEducationHandler(deps.Education)
	settingsHandler := handler.NewSettingsHandler(deps.Auth)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Redis)

	// --- Guards ---
	anyRole := middleware.Protected()
	staff := middleware.Protected(domain.RoleAdmin, domain.RoleSpecialist)
	adminOnly := middleware.Protected(domain.RoleAdmin)
	clientOnly := middleware.Protected(domain.RoleClient)

	// --- Auth ---
	e.POST("/login", authHandler.Login, middleware.PublicOnly())
	e.POST("/logout", authHandler.Logout)
	e.GET("/me", authHandler.Me, anyRole)

	// --- Staff views ---
	e.GET("/dashboard", reportHandler.Dashboard, anyRole)
	e.GET("/clients", clientHandler.List, staff)
	e.POST("/clients", clientHandler.Create, staff)
	e.GET("/clients/:clientId", clientHandler.Get, staff)
	e.PATCH("/clients/:clientId", clientHandler.Update, staff)
	e.GET("/clients/:clientId/scores", clientHandler.Scores, staff)
	e.POST("/clients/:clientId/scores", clientHandler.AddScore, staff)
	e.GET("/clients/:clientId/negative-items", clientHandler.Items, staff)
	e.POST("/clients/:clientId/negative-items", clientHandler.CreateItem, staff)
	e.PATCH("/negative-items/:itemId", clientHandler.UpdateItem, staff)
	e.GET("/disputes", disputeHandler.Disputes, staff)
	e.GET("/dispute-templates", disputeHandler.Templates, staff)
	e.POST("/dispute-templates", disputeHandler.CreateTemplate, staff)
	e.PATCH("/dispute-templates/:templateId", disputeHandler.UpdateTemplate, staff)
	e.GET("/reports", reportHandler.Reports, staff)

	// --- Admin panel ---
	e.GET("/admin", adminHandler.Panel, adminOnly)

	// --- Client portal ---
	e.GET("/portal", portalHandler.Portal, clientOnly)

	// --- Shared views ---
	e.GET("/documents", documentHandler.List, anyRole)
	e.POST("/documents", documentHandler.Upload, anyRole)
	e.GET("/education", educationHandler.Catalog, anyRole)
	e.GET("/settings", settingsHandler.Get, anyRole)
	e.PATCH("/settings", settingsHandler.Update, anyRole)

	// --- Operational endpoints (no auth) ---
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// Unknown paths land on the dashboard, where the guard sorts out who
	// the caller is.
	e.Any("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, middleware.DashboardPath)
	})

	return e
}
