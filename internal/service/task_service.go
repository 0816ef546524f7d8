package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskService provides the task operations exposed over HTTP.
type TaskService interface {
	// ListTasks returns every task in insertion order.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// GetTask returns the task with the given id or ErrTaskNotFound.
	GetTask(ctx context.Context, id int) (*domain.Task, error)

	// CreateTask appends a new task or returns ErrInvalidTaskData.
	CreateTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error)

	// UpdateTask overwrites title and completed. ErrTaskNotFound is checked
	// before ErrInvalidTaskData.
	UpdateTask(ctx context.Context, id int, input domain.TaskInput) (*domain.Task, error)

	// DeleteTask removes the task and returns the removed record.
	DeleteTask(ctx context.Context, id int) (*domain.Task, error)
}

type taskServiceImpl struct {
	store        store.TaskStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "taskStore cannot be nil"}
	}
	if eventEmitter == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "eventEmitter cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		store:        taskStore,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "task_service"),
	}, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, id int) (*domain.Task, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get_task", "failed to get task", err)
	}
	return task, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.store.Create(ctx, input)
	if err != nil {
		return nil, NewTaskServiceError("create_task", "failed to create task", err)
	}

	log.Debug("task created", "task_id", task.ID)
	s.emit(ctx, events.TypeTaskCreated, task)
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int, input domain.TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.store.Update(ctx, id, input)
	if err != nil {
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.Debug("task updated", "task_id", task.ID)
	s.emit(ctx, events.TypeTaskUpdated, task)
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Debug("task deleted", "task_id", task.ID)
	s.emit(ctx, events.TypeTaskDeleted, task)
	return task, nil
}

// emit publishes a lifecycle event. The mutation has already happened, so
// failures are logged and swallowed.
func (s *taskServiceImpl) emit(ctx context.Context, eventType string, task *domain.Task) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewTaskEvent(eventType, task.ID, task)
	if err != nil {
		log.Error("failed to build task event", "error", err, "event_type", eventType, "task_id", task.ID)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		log.Warn("task event handler failed",
			"error", err,
			"event_id", event.ID,
			"event_type", eventType,
			"task_id", task.ID)
	}
}
