package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/phrazzld/task-api/internal/api/middleware"
	"github.com/phrazzld/task-api/internal/api/shared"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	// Registers the OpenAPI document with swag.
	_ "github.com/phrazzld/task-api/docs"
)

// DefaultDocsPath is where the API documentation UI is mounted when no
// other path is configured.
const DefaultDocsPath = "/api-docs"

// NewRouter builds the HTTP handler serving the task routes, the health
// check and the API documentation. docsPath must start with a slash and
// have none at the end, as config.Load guarantees. Recoverer sits inside the trace
// middleware so a recovered panic is still access-logged with its trace id.
func NewRouter(handler *TaskHandler, logger *slog.Logger, docsPath string) http.Handler {
	if docsPath == "" {
		docsPath = DefaultDocsPath
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(logger))
	r.Use(apiMiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", handler.ListTasks)
		r.Post("/", handler.CreateTask)
		r.Get("/{id}", handler.GetTask)
		r.Put("/{id}", handler.UpdateTask)
		r.Delete("/{id}", handler.DeleteTask)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Get(docsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, docsPath+"/index.html", http.StatusMovedPermanently)
	})
	r.Get(docsPath+"/*", httpSwagger.Handler(httpSwagger.URL(docsPath+"/doc.json")))

	return r
}
