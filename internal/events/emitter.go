package events

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// InMemoryEventEmitter fans task events out to its handlers synchronously,
// in registration order, on the caller's goroutine.
type InMemoryEventEmitter struct {
	mu       sync.RWMutex
	handlers []EventHandler
	logger   *slog.Logger
}

var _ EventEmitter = (*InMemoryEventEmitter)(nil)

// NewInMemoryEventEmitter creates an emitter with no handlers.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		logger: logger.With(slog.String("component", "task_event_emitter")),
	}
}

// RegisterHandler subscribes handler to every subsequent task event.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	e.handlers = append(e.handlers, handler)
	count := len(e.handlers)
	e.mu.Unlock()

	e.logger.Debug("task event handler registered",
		slog.String("handler", fmt.Sprintf("%T", handler)),
		slog.Int("handlers", count))
}

// EmitEvent delivers event to every handler. A failing handler does not stop
// delivery to the rest; the first failure is returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *TaskEvent) error {
	e.mu.RLock()
	handlers := slices.Clone(e.handlers)
	e.mu.RUnlock()

	var firstErr error
	for _, handler := range handlers {
		err := handler.HandleEvent(ctx, event)
		if err == nil {
			continue
		}
		e.logger.ErrorContext(ctx, "task event handler failed",
			slog.String("handler", fmt.Sprintf("%T", handler)),
			slog.String("event_type", event.Type),
			slog.Int("task_id", event.TaskID),
			slog.String("error", err.Error()))
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
