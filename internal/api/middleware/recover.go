package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/redact"
)

// Recoverer is the top-level safety net for handler panics. It logs the
// redacted panic value with the stack, answers with the standard 500 envelope and
// keeps the server running. http.ErrAbortHandler is re-raised so net/http
// can abort the connection as intended.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("recovered from panic",
				slog.String("trace_id", shared.GetTraceID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("panic", redact.Value(rec)),
				slog.String("stack", string(debug.Stack())))

			shared.RespondWithJSON(w, r, http.StatusInternalServerError, shared.Envelope{
				Success: false,
				Message: shared.MsgInternalError,
			})
		}()

		next.ServeHTTP(w, r)
	})
}
