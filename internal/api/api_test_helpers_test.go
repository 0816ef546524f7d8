package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/stretchr/testify/require"
)

// envelope mirrors shared.Envelope with a raw data field so tests can
// decode data into whichever shape the route returns.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newTestRouter wires a seeded memory store through the real service.
func newTestRouter(t *testing.T, opts ...memory.Option) http.Handler {
	t.Helper()
	log := discardLogger()
	if len(opts) == 0 {
		opts = []memory.Option{memory.WithSeed(memory.DefaultSeed())}
	}
	store := memory.NewTaskStore(log, opts...)
	svc, err := service.NewTaskService(store, events.NewInMemoryEventEmitter(log), log)
	require.NoError(t, err)
	return NewRouter(NewTaskHandler(svc, log), log, DefaultDocsPath)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	return doRaw(t, h, method, path, reader)
}

func doRaw(t *testing.T, h http.Handler, method, path string, body io.Reader) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	}
	return rec, env
}

func decodeTask(t *testing.T, env envelope) domain.Task {
	t.Helper()
	var task domain.Task
	require.NoError(t, json.Unmarshal(env.Data, &task))
	return task
}

func decodeTasks(t *testing.T, env envelope) []domain.Task {
	t.Helper()
	var tasks []domain.Task
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	return tasks
}

var errBackend = errors.New("backend exploded at /var/lib/tasks/state.db")

// stubTaskService fails every call with err, or panics when panicValue is set.
type stubTaskService struct {
	err        error
	panicValue interface{}
}

func (s *stubTaskService) fail() error {
	if s.panicValue != nil {
		panic(s.panicValue)
	}
	return s.err
}

func (s *stubTaskService) ListTasks(context.Context) ([]domain.Task, error) {
	return nil, s.fail()
}

func (s *stubTaskService) GetTask(context.Context, int) (*domain.Task, error) {
	return nil, s.fail()
}

func (s *stubTaskService) CreateTask(context.Context, domain.TaskInput) (*domain.Task, error) {
	return nil, s.fail()
}

func (s *stubTaskService) UpdateTask(context.Context, int, domain.TaskInput) (*domain.Task, error) {
	return nil, s.fail()
}

func (s *stubTaskService) DeleteTask(context.Context, int) (*domain.Task, error) {
	return nil, s.fail()
}
