package store

import (
	"context"

	"github.com/phrazzld/task-api/internal/domain"
)

// TaskStore defines the interface for the task collection.
// Every method is a single atomic step against the collection.
type TaskStore interface {
	// List returns all tasks in insertion order.
	// Returns an empty, non-nil slice when the collection is empty.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID returns the first task with the given id.
	// Returns ErrTaskNotFound if no task matches.
	GetByID(ctx context.Context, id int) (*domain.Task, error)

	// Create validates the input, assigns an id and appends the task.
	// Returns ErrInvalidEntity wrapping the domain error if the input is invalid.
	Create(ctx context.Context, input domain.TaskInput) (*domain.Task, error)

	// Update overwrites title and completed of the task with the given id.
	// Existence is checked before validity: ErrTaskNotFound wins over ErrInvalidEntity.
	Update(ctx context.Context, id int, input domain.TaskInput) (*domain.Task, error)

	// Delete removes the task with the given id and returns the removed record.
	// Returns ErrTaskNotFound if no task matches.
	Delete(ctx context.Context, id int) (*domain.Task, error)

	// Len returns the current size of the collection.
	Len(ctx context.Context) int
}
