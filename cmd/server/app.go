package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/store"
)

// application holds all the shared application dependencies. The task
// collection lives exactly as long as the application.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore    store.TaskStore
	eventEmitter events.EventEmitter
	taskService  service.TaskService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	opts := []memory.Option{memory.WithIDStrategy(memory.IDStrategy(cfg.Store.IDStrategy))}
	if cfg.Store.Seed {
		opts = append(opts, memory.WithSeed(memory.DefaultSeed()))
	}
	app.taskStore = memory.NewTaskStore(logger, opts...)

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewAuditLogHandler(logger))
	app.eventEmitter = emitter

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"tasks", app.taskStore.Len(context.Background()))
	return app, nil
}

// Run starts the application server and blocks until ctx is canceled or
// the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources after the server has stopped.
func (app *application) cleanup() {
	if app.taskStore != nil {
		app.logger.Info("Discarding in-memory tasks",
			"tasks", app.taskStore.Len(context.Background()))
	}
	app.logger.Info("Application shutdown completed")
}
