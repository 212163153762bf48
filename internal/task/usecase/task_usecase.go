package usecase

import (
	"strings"
	"time"

	"taskmanager-backend/internal/apperr"
	"taskmanager-backend/internal/task/domain"
	"taskmanager-backend/internal/task/repository"

	"github.com/google/uuid"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) CreateTask(userID, title, description string, dueDate *time.Time) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperr.ErrTitleRequired
	}

	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		IsCompleted: false,
		UserID:      userID,
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) GetTaskByID(taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperr.ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) ListTasks(filter domain.Filter) ([]*domain.Task, error) {
	return u.taskRepo.FindAll(filter)
}

// findOwned resolves a task for mutation. A task owned by someone else
// reads the same as a missing one.
func (u *taskUsecase) findOwned(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByIDAndOwner(taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperr.ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.findOwned(userID, taskID)
	if err != nil {
		return nil, err
	}

	// An empty title means "leave the title alone", it never clears it.
	if updates.Title != nil && *updates.Title != "" {
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.DueDate != nil {
		task.DueDate = updates.DueDate
	}
	if updates.IsCompleted != nil {
		task.IsCompleted = *updates.IsCompleted
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	task, err := u.findOwned(userID, taskID)
	if err != nil {
		return err
	}
	return u.taskRepo.Delete(task.ID)
}

func (u *taskUsecase) SetCompletion(userID, taskID string, completed bool) (*domain.Task, error) {
	task, err := u.findOwned(userID, taskID)
	if err != nil {
		return nil, err
	}

	task.IsCompleted = completed
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) Statistics(userID string) (*Statistics, error) {
	total, err := u.taskRepo.CountByOwner(userID)
	if err != nil {
		return nil, err
	}

	completed, err := u.taskRepo.CountCompletedByOwner(userID)
	if err != nil {
		return nil, err
	}

	overdue, err := u.taskRepo.CountOverdueByOwner(userID, time.Now())
	if err != nil {
		return nil, err
	}

	return &Statistics{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Overdue:   overdue,
	}, nil
}
