package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/task-api/internal/store"
)

// Sentinel errors returned directly by TaskService.
//
// Error handling principles:
// 1. Expected conditions (missing task, bad payload) return a sentinel
// 2. Unexpected errors are wrapped in *TaskServiceError
// 3. The API layer maps sentinels to 404/400 and everything else to 500
var (
	// ErrTaskNotFound indicates that no task has the requested id.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTaskData indicates the payload is not {title: string, completed: bool}.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidTaskData = errors.New("invalid task data")
)

// TaskServiceError wraps unexpected errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError maps store sentinels onto service sentinels and wraps
// everything else. Returns nil for a nil err.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, store.ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, ErrInvalidTaskData), errors.Is(err, store.ErrInvalidEntity):
		return ErrInvalidTaskData
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
