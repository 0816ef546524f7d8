package domain

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidTaskData is returned when a task payload is not
// {title: string, completed: bool}.
var ErrInvalidTaskData = fmt.Errorf("%w: invalid task data", ErrValidation)

// ErrInvalidTaskID is returned when a task is built with a non-positive ID.
var ErrInvalidTaskID = fmt.Errorf("%w: task id must be positive", ErrInvalidID)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Task is the single resource managed by the service.
type Task struct {
	ID        int    `json:"id"        example:"1"`
	Title     string `json:"title"     example:"Write the weekly report"`
	Completed bool   `json:"completed" example:"false"`
}

// TaskInput is the client-supplied part of a Task, shared by create and update.
//
// Both fields are pointers. UnmarshalJSON only fills a field from its exact
// lowercase key with a value of the right JSON type, so a missing key, a
// differently cased key, an explicit null and a value of the wrong type all
// leave the field nil and fail validation. An empty title is accepted.
type TaskInput struct {
	Title     *string `json:"title"     validate:"required" example:"Buy milk"`
	Completed *bool   `json:"completed" validate:"required" example:"false"`
}

// NewTaskInput is a convenience constructor used by tests and seed data.
func NewTaskInput(title string, completed bool) TaskInput {
	return TaskInput{Title: &title, Completed: &completed}
}

// UnmarshalJSON decodes an object keyed exactly by "title" and "completed".
// Field values that do not decode are left nil rather than reported, so the
// payload is rejected by Validate like any other incomplete input.
func (in *TaskInput) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*in = TaskInput{}
	if raw, ok := fields["title"]; ok {
		var title *string
		if json.Unmarshal(raw, &title) == nil {
			in.Title = title
		}
	}
	if raw, ok := fields["completed"]; ok {
		var completed *bool
		if json.Unmarshal(raw, &completed) == nil {
			in.Completed = completed
		}
	}
	return nil
}

// Validate checks that both fields are present with the right types.
func (in TaskInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTaskData, err)
	}
	return nil
}

// NewTask builds a Task with the given id from a validated input.
func NewTask(id int, in TaskInput) (*Task, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskID
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &Task{
		ID:        id,
		Title:     *in.Title,
		Completed: *in.Completed,
	}, nil
}

// Apply overwrites title and completed in place. The ID never changes.
func (t *Task) Apply(in TaskInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	t.Title = *in.Title
	t.Completed = *in.Completed
	return nil
}
