package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/service"
)

// MapErrorToStatusCode maps service errors to HTTP status codes. Anything
// unrecognised is a 500 so internal error types never leak.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidTaskData):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		return MsgTaskNotFound
	case errors.Is(err, service.ErrInvalidTaskData):
		return MsgInvalidData
	default:
		return shared.MsgInternalError
	}
}
