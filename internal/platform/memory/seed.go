package memory

import "github.com/phrazzld/task-api/internal/domain"

// DefaultSeed returns the five tasks the service starts with.
func DefaultSeed() []domain.Task {
	return []domain.Task{
		{ID: 1, Title: "Set up the development environment", Completed: true},
		{ID: 2, Title: "Write the API documentation", Completed: false},
		{ID: 3, Title: "Review open pull requests", Completed: false},
		{ID: 4, Title: "Plan the next sprint", Completed: true},
		{ID: 5, Title: "Deploy to staging", Completed: false},
	}
}
