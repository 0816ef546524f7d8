package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskHandler_PanicsOnNilDependencies(t *testing.T) {
	assert.Panics(t, func() { NewTaskHandler(nil, discardLogger()) })
	assert.Panics(t, func() { NewTaskHandler(&stubTaskService{}, nil) })
}

func TestListTasks(t *testing.T) {
	t.Run("returns the seed in insertion order", func(t *testing.T) {
		rec, env := doJSON(t, newTestRouter(t), http.MethodGet, "/api/tasks", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, MsgTasksFetched, env.Message)
		assert.Equal(t, memory.DefaultSeed(), decodeTasks(t, env))
	})

	t.Run("empty collection is an empty list", func(t *testing.T) {
		router := newTestRouter(t, memory.WithIDStrategy(memory.IDStrategyLength))
		rec, env := doJSON(t, router, http.MethodGet, "/api/tasks", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.JSONEq(t, `[]`, string(env.Data))
	})
}

func TestGetTask(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantMsg    string
	}{
		{"existing task", "/api/tasks/3", http.StatusOK, MsgTaskFetched},
		{"unknown id", "/api/tasks/999", http.StatusNotFound, MsgTaskNotFound},
		{"zero id", "/api/tasks/0", http.StatusNotFound, MsgTaskNotFound},
		{"negative id", "/api/tasks/-1", http.StatusNotFound, MsgTaskNotFound},
		{"non-numeric id", "/api/tasks/abc", http.StatusNotFound, MsgTaskNotFound},
		{"fractional id", "/api/tasks/1.5", http.StatusNotFound, MsgTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doJSON(t, router, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, env.Message)
			assert.Equal(t, tt.wantStatus == http.StatusOK, env.Success)
			if tt.wantStatus != http.StatusOK {
				assert.Empty(t, env.Data, "failure envelopes carry no data")
			}
		})
	}

	t.Run("returns the matching record", func(t *testing.T) {
		_, env := doJSON(t, router, http.MethodGet, "/api/tasks/3", nil)
		assert.Equal(t, memory.DefaultSeed()[2], decodeTask(t, env))
	})
}

func TestCreateTask(t *testing.T) {
	t.Run("valid payload is appended with the next id", func(t *testing.T) {
		router := newTestRouter(t)
		rec, env := doJSON(t, router, http.MethodPost, "/api/tasks",
			map[string]interface{}{"title": "Buy milk", "completed": false})

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, MsgTaskCreated, env.Message)
		assert.Equal(t, domain.Task{ID: 6, Title: "Buy milk", Completed: false}, decodeTask(t, env))

		_, list := doJSON(t, router, http.MethodGet, "/api/tasks", nil)
		tasks := decodeTasks(t, list)
		require.Len(t, tasks, 6)
		assert.Equal(t, 6, tasks[5].ID, "new task is last")
	})

	t.Run("empty title and unknown fields are accepted", func(t *testing.T) {
		router := newTestRouter(t)
		rec, env := doJSON(t, router, http.MethodPost, "/api/tasks",
			map[string]interface{}{"title": "", "completed": true, "priority": "high"})

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, domain.Task{ID: 6, Title: "", Completed: true}, decodeTask(t, env))
	})

	invalid := []struct {
		name string
		body string
	}{
		{"missing title", `{"completed": false}`},
		{"missing completed", `{"title": "x"}`},
		{"numeric title", `{"title": 123, "completed": false}`},
		{"string completed", `{"title": "x", "completed": "yes"}`},
		{"null title", `{"title": null, "completed": false}`},
		{"empty object", `{}`},
		{"json null", `null`},
		{"json array", `[]`},
		{"malformed json", `{"title": "x",`},
		{"empty body", ``},
		{"upper case keys", `{"TITLE": "x", "Completed": true}`},
		{"mixed case title", `{"Title": "x", "completed": true}`},
		{"trailing bytes", `{"title": "x", "completed": true} trailing`},
		{"two objects", `{"title": "x", "completed": true}{"title": "y", "completed": false}`},
	}
	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			router := newTestRouter(t)
			rec, env := doRaw(t, router, http.MethodPost, "/api/tasks", strings.NewReader(tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, MsgInvalidData, env.Message)

			_, list := doJSON(t, router, http.MethodGet, "/api/tasks", nil)
			assert.Len(t, decodeTasks(t, list), 5, "collection must be unchanged")
		})
	}
}

func TestUpdateTask(t *testing.T) {
	t.Run("overwrites title and completed, keeps id and position", func(t *testing.T) {
		router := newTestRouter(t)
		rec, env := doJSON(t, router, http.MethodPut, "/api/tasks/2",
			map[string]interface{}{"title": "Renamed", "completed": true, "id": 42})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, MsgTaskUpdated, env.Message)
		assert.Equal(t, domain.Task{ID: 2, Title: "Renamed", Completed: true}, decodeTask(t, env))

		_, list := doJSON(t, router, http.MethodGet, "/api/tasks", nil)
		tasks := decodeTasks(t, list)
		require.Len(t, tasks, 5)
		assert.Equal(t, domain.Task{ID: 2, Title: "Renamed", Completed: true}, tasks[1])
	})

	t.Run("missing task wins over invalid payload", func(t *testing.T) {
		router := newTestRouter(t)
		rec, env := doRaw(t, router, http.MethodPut, "/api/tasks/99", strings.NewReader(`{"title": 1}`))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, MsgTaskNotFound, env.Message)
	})

	t.Run("non-numeric id is not found", func(t *testing.T) {
		router := newTestRouter(t)
		rec, env := doJSON(t, router, http.MethodPut, "/api/tasks/abc",
			map[string]interface{}{"title": "x", "completed": true})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, MsgTaskNotFound, env.Message)
	})

	for name, body := range map[string]string{
		"wrong type":      `{"title": "x", "completed": "no"}`,
		"upper case keys": `{"Title": "renamed", "COMPLETED": true}`,
		"trailing bytes":  `{"title": "renamed", "completed": true} trailing`,
	} {
		t.Run("invalid payload leaves the task untouched: "+name, func(t *testing.T) {
			router := newTestRouter(t)
			rec, env := doRaw(t, router, http.MethodPut, "/api/tasks/1", strings.NewReader(body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, MsgInvalidData, env.Message)

			_, got := doJSON(t, router, http.MethodGet, "/api/tasks/1", nil)
			assert.Equal(t, memory.DefaultSeed()[0], decodeTask(t, got))
		})
	}
}

func TestDeleteTask(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodDelete, "/api/tasks/4", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, MsgTaskDeleted, env.Message)
	assert.Equal(t, []domain.Task{memory.DefaultSeed()[3]}, decodeTasks(t, env), "data is a one-element list")

	_, list := doJSON(t, router, http.MethodGet, "/api/tasks", nil)
	var ids []int
	for _, task := range decodeTasks(t, list) {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 5}, ids, "remaining order is preserved")

	rec, env = doJSON(t, router, http.MethodDelete, "/api/tasks/4", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "second delete is not found")
	assert.Equal(t, MsgTaskNotFound, env.Message)

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/tasks/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskLifecycleScenario(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/tasks",
		map[string]interface{}{"title": "Buy milk", "completed": false})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 6, decodeTask(t, env).ID)

	rec, env = doJSON(t, router, http.MethodGet, "/api/tasks/6", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Buy milk", decodeTask(t, env).Title)

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/tasks/6", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, router, http.MethodGet, "/api/tasks/6", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, MsgTaskNotFound, env.Message)
}

func TestIDStrategies(t *testing.T) {
	create := func(t *testing.T, router http.Handler) domain.Task {
		rec, env := doJSON(t, router, http.MethodPost, "/api/tasks",
			map[string]interface{}{"title": "after delete", "completed": false})
		require.Equal(t, http.StatusCreated, rec.Code)
		return decodeTask(t, env)
	}

	t.Run("length strategy can reuse an id after a delete", func(t *testing.T) {
		router := newTestRouter(t)
		rec, _ := doJSON(t, router, http.MethodDelete, "/api/tasks/2", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, 5, create(t, router).ID)

		_, env := doJSON(t, router, http.MethodGet, "/api/tasks/5", nil)
		assert.Equal(t, memory.DefaultSeed()[4], decodeTask(t, env), "lookup returns the first match")
	})

	t.Run("sequence strategy never reuses ids", func(t *testing.T) {
		router := newTestRouter(t,
			memory.WithSeed(memory.DefaultSeed()),
			memory.WithIDStrategy(memory.IDStrategySequence))
		rec, _ := doJSON(t, router, http.MethodDelete, "/api/tasks/5", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, 6, create(t, router).ID)
	})
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	router := newTestRouter(t, memory.WithIDStrategy(memory.IDStrategyLength))

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"title": "task %d", "completed": false}`, i)
			req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code == http.StatusCreated {
				ids <- 1
			}
		}(i)
	}
	wg.Wait()
	close(ids)
	assert.Len(t, ids, n)

	_, env := doJSON(t, router, http.MethodGet, "/api/tasks", nil)
	seen := make(map[int]bool)
	for _, task := range decodeTasks(t, env) {
		assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
		seen[task.ID] = true
	}
	assert.Len(t, seen, n)
}

func TestInternalErrors(t *testing.T) {
	tests := []struct {
		name    string
		service *stubTaskService
		method  string
		path    string
		body    string
	}{
		{"list error", &stubTaskService{err: errBackend}, http.MethodGet, "/api/tasks", ""},
		{"get error", &stubTaskService{err: errBackend}, http.MethodGet, "/api/tasks/1", ""},
		{"create error", &stubTaskService{err: errBackend}, http.MethodPost, "/api/tasks", `{"title":"x","completed":false}`},
		{"update error", &stubTaskService{err: errBackend}, http.MethodPut, "/api/tasks/1", `{"title":"x","completed":false}`},
		{"delete error", &stubTaskService{err: errBackend}, http.MethodDelete, "/api/tasks/1", ""},
		{"panic", &stubTaskService{panicValue: "nil map write"}, http.MethodGet, "/api/tasks", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := discardLogger()
			router := NewRouter(NewTaskHandler(tt.service, log), log, DefaultDocsPath)

			rec, env := doRaw(t, router, tt.method, tt.path, strings.NewReader(tt.body))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, shared.MsgInternalError, env.Message)
			assert.NotContains(t, rec.Body.String(), "/var/lib", "internal details must not leak")
		})
	}
}
