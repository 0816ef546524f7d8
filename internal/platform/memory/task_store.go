package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// IDStrategy selects how new task ids are derived.
type IDStrategy string

const (
	// IDStrategyLength assigns len(collection)+1. After a delete this can
	// hand out an id that is still in use.
	IDStrategyLength IDStrategy = "length"

	// IDStrategySequence assigns one past the highest id ever handed out.
	// Ids are never reused.
	IDStrategySequence IDStrategy = "sequence"
)

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithSeed preloads the collection. Seed ids count towards the sequence.
func WithSeed(tasks []domain.Task) Option {
	return func(s *TaskStore) {
		s.tasks = append(s.tasks, tasks...)
		for _, t := range tasks {
			s.lastID = max(s.lastID, t.ID)
		}
	}
}

// WithIDStrategy overrides the default IDStrategyLength.
func WithIDStrategy(strategy IDStrategy) Option {
	return func(s *TaskStore) {
		s.strategy = strategy
	}
}

// TaskStore implements store.TaskStore over an ordered in-memory slice.
type TaskStore struct {
	mu       sync.RWMutex
	tasks    []domain.Task
	strategy IDStrategy
	lastID   int
	logger   *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty TaskStore unless WithSeed is given.
func NewTaskStore(logger *slog.Logger, opts ...Option) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &TaskStore{
		tasks:    make([]domain.Task, 0),
		strategy: IDStrategyLength,
		logger:   logger.With(slog.String("component", "memory_task_store")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a copy of the collection in insertion order.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.tasks), nil
}

// GetByID returns the first task with the given id.
func (s *TaskStore) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, store.ErrTaskNotFound
	}

	task := s.tasks[idx]
	return &task, nil
}

// Create validates the input, assigns the next id and appends the task.
func (s *TaskStore) Create(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	task, err := domain.NewTask(id, input)
	if err != nil {
		return nil, invalidTask("create", err)
	}

	if s.indexOf(id) >= 0 {
		log.Warn("assigned task id is already in use",
			slog.Int("task_id", id),
			slog.String("id_strategy", string(s.strategy)))
	}

	s.tasks = append(s.tasks, *task)
	s.lastID = max(s.lastID, id)

	created := *task
	return &created, nil
}

// Update overwrites the task with the given id in place.
// Position and id are preserved.
func (s *TaskStore) Update(ctx context.Context, id int, input domain.TaskInput) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, store.ErrTaskNotFound
	}

	if err := s.tasks[idx].Apply(input); err != nil {
		return nil, invalidTask("update", err)
	}

	updated := s.tasks[idx]
	return &updated, nil
}

// Delete removes the first task with the given id.
func (s *TaskStore) Delete(ctx context.Context, id int) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, store.ErrTaskNotFound
	}

	removed := s.tasks[idx]
	s.tasks = slices.Delete(s.tasks, idx, idx+1)
	return &removed, nil
}

// Len returns the number of tasks currently stored.
func (s *TaskStore) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks)
}

// nextID must be called with mu held.
func (s *TaskStore) nextID() int {
	if s.strategy == IDStrategySequence {
		return s.lastID + 1
	}
	return len(s.tasks) + 1
}

func invalidTask(operation string, err error) error {
	return store.NewStoreError("task", operation, "invalid task payload",
		fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
}

// indexOf must be called with mu held.
func (s *TaskStore) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
}
