package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-api/internal/domain"
)

// AuditLogHandler writes every task event to the structured log.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler logging under the task_audit component.
func NewAuditLogHandler(logger *slog.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		logger: logger.With(slog.String("component", "task_audit")),
	}
}

// HandleEvent implements EventHandler. The payload must be the task snapshot.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	var task domain.Task
	if err := event.UnmarshalPayload(&task); err != nil {
		return fmt.Errorf("audit %s event %s: %w", event.Type, event.ID, err)
	}

	h.logger.InfoContext(ctx, "task changed",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.Int("task_id", event.TaskID),
		slog.String("title", task.Title),
		slog.Bool("completed", task.Completed))
	return nil
}
