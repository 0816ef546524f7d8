package main

import (
	"net/http"

	"github.com/phrazzld/task-api/internal/api"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	return api.NewRouter(taskHandler, app.logger, app.config.Docs.Path)
}
