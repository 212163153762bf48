package usecase

import (
	"time"

	"taskmanager-backend/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a task owned by the calling user
	CreateTask(userID, title, description string, dueDate *time.Time) (*domain.Task, error)

	// GetTaskByID retrieves any task by ID, without ownership scoping
	GetTaskByID(taskID string) (*domain.Task, error)

	// ListTasks lists tasks across all owners, filtered by completion state
	ListTasks(filter domain.Filter) ([]*domain.Task, error)

	// UpdateTask applies a partial update to a task owned by the caller
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask deletes a task owned by the caller
	DeleteTask(userID, taskID string) error

	// SetCompletion marks a task owned by the caller complete or incomplete
	SetCompletion(userID, taskID string, completed bool) (*domain.Task, error)

	// Statistics computes the caller's task counts
	Statistics(userID string) (*Statistics, error)
}

// TaskUpdateRequest represents the fields that can be updated. Only fields
// present in the request body are applied.
type TaskUpdateRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsCompleted *bool      `json:"isCompleted,omitempty"`
}

// Statistics are the per-user task counts.
type Statistics struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
	Overdue   int64 `json:"overdue"`
}
