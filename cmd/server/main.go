// @title        Credit Repair API
// @version      1.0
// @description  Role-based credit repair platform backend with remote-first reads and local fallback.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/creditfix/credit-repair-api/docs"
	"github.com/creditfix/credit-repair-api/internal/api"
	"github.com/creditfix/credit-repair-api/internal/core/service"
	"github.com/creditfix/credit-repair-api/internal/core/state"
	"github.com/creditfix/credit-repair-api/internal/infrastructure/config"
	"github.com/creditfix/credit-repair-api/internal/infrastructure/db/postgres"
	redisdb "github.com/creditfix/credit-repair-api/internal/infrastructure/db/redis"
	"github.com/creditfix/credit-repair-api/internal/infrastructure/fallback"
	"github.com/creditfix/credit-repair-api/pkg/logger"
)

const sessionTTL = 24 * time.Hour

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{Level: "info"})
		log := logger.Get()
		log.Fatal().Err(err).Msg("configuration")
	}

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Backends are best-effort at startup: a dead database or session store
	// degrades reads to the bundled data instead of blocking boot.
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:      cfg.Supabase.DSN,
		MaxConns: cfg.Supabase.MaxConns,
		MaxIdle:  cfg.Supabase.MaxIdle,
	})
	if err != nil {
		log.Warn().Err(err).Msg("postgres unavailable, starting degraded")
	}
	defer db.Close()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, starting degraded")
	}
	defer rdb.Close()

	local := fallback.NewStore(cfg.FallbackDir, logger.Component("fallback"))

	// Repositories.
	users := postgres.NewUserRepository(db)
	clients := postgres.NewClientRepository(db)
	scores := postgres.NewScoreRepository(db)
	items := postgres.NewNegativeItemRepository(db)
	templates := postgres.NewTemplateRepository(db)
	documents := postgres.NewDocumentRepository(db)
	comms := postgres.NewCommunicationRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	// Services.
	authService := service.NewAuthService(users, sessions, local, cfg.JWTSecret, sessionTTL, logger.Component("auth"))
	clientService := service.NewClientService(clients, local, logger.Component("clients"))
	scoreService := service.NewScoreService(scores, fallback.SyntheticScore, logger.Component("scores"))
	itemService := service.NewNegativeItemService(items, fallback.SyntheticItem, logger.Component("negative_items"))
	disputeService := service.NewDisputeService(templates, items, local, logger.Component("disputes"))
	documentService := service.NewDocumentService(documents, fallback.SyntheticDocument, logger.Component("documents"))
	commService := service.NewCommunicationService(comms, fallback.SyntheticCommunication, logger.Component("communications"))
	reportService := service.NewReportService(clientService, scoreService, itemService, logger.Component("reports"))
	educationService := service.NewEducationService()

	authState := state.NewStore(authService)

	e := api.NewRouter(api.Dependencies{
		DB:        db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		AuthState: authState,
		Auth:      authService,
		Clients:   clientService,
		Scores:    scoreService,
		Items:     itemService,
		Disputes:  disputeService,
		Documents: documentService,
		Comms:     commService,
		Reports:   reportService,
		Education: educationService,
		Users:     users,
		Local:     local,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
