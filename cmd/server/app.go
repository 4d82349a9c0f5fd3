package main

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/azmath1924/go-rest-starter/internal/config"
	"github.com/azmath1924/go-rest-starter/internal/platform/postgres"
	"github.com/azmath1924/go-rest-starter/internal/service"
	"github.com/azmath1924/go-rest-starter/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *gorm.DB

	userStore   store.UserStore
	userService service.UserService
}

// newApplication connects to the database, syncs or migrates the schema, and
// builds the service layer.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("database connection established")

	// Development and test sync the schema from the models; production only
	// ever applies the embedded migrations.
	if err := postgres.Sync(db, !cfg.Server.IsProduction()); err != nil {
		return nil, fmt.Errorf("failed to prepare database schema: %w", err)
	}

	userStore := postgres.NewUserStore(db)

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		userStore:   userStore,
		userService: service.NewUserService(userStore, logger),
	}, nil
}

// cleanup releases the resources the application owns. Safe to call after a
// failed startup.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	sqlDB, err := app.db.DB()
	if err != nil {
		app.logger.Error("failed to access connection pool during cleanup", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	}
}
