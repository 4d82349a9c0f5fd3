// Package main implements the entry point for the REST API server: load
// configuration, set up logging and the database, wire the application, and
// serve until a shutdown signal arrives.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/azmath1924/go-rest-starter/internal/config"
	"github.com/azmath1924/go-rest-starter/internal/platform/logger"
)

func main() {
	// A local .env is a development convenience; a missing file is fine.
	_ = godotenv.Load()

	if err := run(context.Background()); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run wires the application and blocks until shutdown completes.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg := logger.Setup(cfg.Server)
	logg.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"environment", cfg.Server.Environment)

	app, err := newApplication(ctx, cfg, logg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.serve(ctx)
}
