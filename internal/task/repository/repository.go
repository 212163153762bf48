package repository

import (
	"time"

	"taskmanager-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID regardless of owner
	FindByID(id string) (*domain.Task, error)

	// FindByIDAndOwner finds a task only when it belongs to the given user.
	// A foreign task and a missing task both come back as (nil, nil).
	FindByIDAndOwner(id, userID string) (*domain.Task, error)

	// FindAll lists tasks across all owners, newest-created first,
	// optionally filtered by completion state
	FindAll(filter domain.Filter) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error

	// per-user statistics
	CountByOwner(userID string) (int64, error)
	CountCompletedByOwner(userID string) (int64, error)
	CountOverdueByOwner(userID string, now time.Time) (int64, error)

	// system-wide counts for the admin surface
	CountTasks() (int64, error)
	CountCompleted() (int64, error)
}
