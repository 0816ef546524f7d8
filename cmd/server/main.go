// Package main implements the entry point for the task API server, which
// serves CRUD operations over an in-memory task collection together with
// its generated API documentation.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// main is the entry point for the task-api server.
// It loads configuration, sets up logging, builds the application and
// serves HTTP until interrupted.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("task-api: %v", err)
	}
}

// run performs the startup sequence and blocks until ctx is canceled or the
// server fails.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"id_strategy", cfg.Store.IDStrategy,
		"seed", cfg.Store.Seed)

	return app.Run(ctx)
}
