package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/redact"
)

// MsgInternalError is the only detail a client sees for an unexpected fault.
const MsgInternalError = "Internal server error"

// Envelope is the uniform body of every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithSuccess writes a success envelope carrying data.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}, message string) {
	RespondWithJSON(w, r, status, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// RespondWithError writes a failure envelope with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logger.FromContext(r.Context()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, Envelope{Success: false, Message: message})
}

// RespondWithErrorAndLog writes a failure envelope and logs the redacted
// error. Only userMessage reaches the client.
//
// Log level strategy:
// - 5xx errors: ERROR
// - 4xx errors: DEBUG
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	logAttrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, Envelope{Success: false, Message: userMessage})
}
