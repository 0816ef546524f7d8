package service

import (
	"context"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
)

// MockTaskStore is a function-field mock of store.TaskStore.
type MockTaskStore struct {
	ListFn    func(ctx context.Context) ([]domain.Task, error)
	GetByIDFn func(ctx context.Context, id int) (*domain.Task, error)
	CreateFn  func(ctx context.Context, input domain.TaskInput) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, id int, input domain.TaskInput) (*domain.Task, error)
	DeleteFn  func(ctx context.Context, id int) (*domain.Task, error)
	LenFn     func(ctx context.Context) int
}

func (m *MockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Task{}, nil
}

func (m *MockTaskStore) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskStore) Create(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input)
	}
	return nil, nil
}

func (m *MockTaskStore) Update(ctx context.Context, id int, input domain.TaskInput) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, input)
	}
	return nil, nil
}

func (m *MockTaskStore) Delete(ctx context.Context, id int) (*domain.Task, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskStore) Len(ctx context.Context) int {
	if m.LenFn != nil {
		return m.LenFn(ctx)
	}
	return 0
}

// MockEventEmitter records emitted events and optionally fails.
type MockEventEmitter struct {
	mu     sync.Mutex
	Events []*events.TaskEvent
	Err    error
}

func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.TaskEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return m.Err
}

func (m *MockEventEmitter) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.Events))
	for _, e := range m.Events {
		types = append(types, e.Type)
	}
	return types
}
