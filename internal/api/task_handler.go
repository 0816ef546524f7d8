package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/redact"
	"github.com/phrazzld/task-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /api/tasks requests.
//
//	@Summary	List all tasks
//	@Tags		tasks
//	@Produce	json
//	@Success	200	{object}	shared.Envelope{data=[]domain.Task}
//	@Failure	500	{object}	shared.Envelope
//	@Router		/tasks [get]
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, tasks, MsgTasksFetched)
}

// GetTask handles GET /api/tasks/{id} requests.
//
//	@Summary	Get a task by id
//	@Tags		tasks
//	@Produce	json
//	@Param		id	path		int	true	"Task ID"
//	@Success	200	{object}	shared.Envelope{data=domain.Task}
//	@Failure	404	{object}	shared.Envelope
//	@Router		/tasks/{id} [get]
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, task, MsgTaskFetched)
}

// CreateTask handles POST /api/tasks requests.
//
//	@Summary	Create a task
//	@Tags		tasks
//	@Accept		json
//	@Produce	json
//	@Param		task	body		domain.TaskInput	true	"Task to create"
//	@Success	201		{object}	shared.Envelope{data=domain.Task}
//	@Failure	400		{object}	shared.Envelope
//	@Router		/tasks [post]
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	task, err := h.taskService.CreateTask(r.Context(), h.decodeInput(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	log.Debug("task created", slog.Int("task_id", task.ID))
	shared.RespondWithSuccess(w, r, http.StatusCreated, task, MsgTaskCreated)
}

// UpdateTask handles PUT /api/tasks/{id} requests.
// A missing task is reported before an invalid payload.
//
//	@Summary	Replace a task's title and completed flag
//	@Tags		tasks
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Task ID"
//	@Param		task	body		domain.TaskInput	true	"New values"
//	@Success	200		{object}	shared.Envelope{data=domain.Task}
//	@Failure	400		{object}	shared.Envelope
//	@Failure	404		{object}	shared.Envelope
//	@Router		/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, h.decodeInput(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, task, MsgTaskUpdated)
}

// DeleteTask handles DELETE /api/tasks/{id} requests.
// The removed task is returned as a one-element list.
//
//	@Summary	Delete a task
//	@Tags		tasks
//	@Produce	json
//	@Param		id	path		int	true	"Task ID"
//	@Success	200	{object}	shared.Envelope{data=[]domain.Task}
//	@Failure	404	{object}	shared.Envelope
//	@Router		/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.DeleteTask(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, []domain.Task{*task}, MsgTaskDeleted)
}

// pathID parses the {id} segment. A value that is not an integer cannot
// match any task, so it is answered as not found.
func (h *TaskHandler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("non-integer task id", slog.String("id", raw))
		shared.RespondWithError(w, r, http.StatusNotFound, MsgTaskNotFound)
		return 0, false
	}
	return id, true
}

// decodeInput reads the request body. A body that is not a single JSON
// object decodes to the zero TaskInput, which the store rejects like any
// other incomplete payload.
func (h *TaskHandler) decodeInput(r *http.Request) domain.TaskInput {
	var input domain.TaskInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("failed to decode task payload", slog.String("error", redact.Error(err)))
		return domain.TaskInput{}
	}
	return input
}

func (h *TaskHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
