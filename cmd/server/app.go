package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/learnly-app/learnly-api/internal/config"
	"github.com/learnly-app/learnly-api/internal/observability"
	"github.com/learnly-app/learnly-api/internal/platform/logger"
	"github.com/learnly-app/learnly-api/internal/platform/postgres"
	"github.com/learnly-app/learnly-api/internal/service/auth"
	"github.com/learnly-app/learnly-api/internal/service/credential"
	"github.com/learnly-app/learnly-api/internal/store"
)

// application holds the assembled dependencies of the server process.
type application struct {
	config            *config.Config
	logger            *slog.Logger
	db                *sql.DB
	userStore         store.UserStore
	jwtService        auth.JWTService
	credentialService *credential.Service
	obsServer         *observability.Server
}

// newApplication loads configuration and builds every component the server
// needs: logger, database (with migrations applied), stores, auth
// collaborators and the credential service.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	hasher := auth.NewBcryptHasher()
	userStore := postgres.NewUserStore(db)

	app := &application{
		config:            cfg,
		logger:            appLogger,
		db:                db,
		userStore:         userStore,
		jwtService:        jwtService,
		credentialService: credential.NewService(userStore, jwtService, hasher, hasher),
	}

	if cfg.Server.MetricsAddr != "" {
		app.obsServer = observability.NewServer(cfg.Server.MetricsAddr, func() bool {
			return db.PingContext(context.Background()) == nil
		})
	}

	return app, nil
}

// run starts the optional observability listener and the HTTP server, and
// blocks until shutdown completes.
func (app *application) run(ctx context.Context) error {
	if app.obsServer != nil {
		if _, err := app.obsServer.Start(); err != nil {
			return fmt.Errorf("failed to start observability server: %w", err)
		}
		app.logger.Info("Observability endpoints listening", "addr", app.obsServer.Addr())
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases process-wide resources during shutdown.
func (app *application) cleanup() {
	if app.obsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.obsServer.Shutdown(shutdownCtx); err != nil {
			app.logger.Error("Observability server shutdown failed", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
