package repository

import (
	"errors"
	"time"

	"taskmanager-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByIDAndOwner(id, userID string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindAll(filter domain.Filter) ([]*domain.Task, error) {
	query := r.db.Model(&domain.Task{})

	switch filter {
	case domain.FilterPending:
		query = query.Where("is_completed = ?", false)
	case domain.FilterCompleted:
		query = query.Where("is_completed = ?", true)
	}

	var tasks []*domain.Task
	err := query.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) Delete(id string) error {
	return r.db.Delete(&domain.Task{}, "id = ?", id).Error
}

func (r *gormTaskRepository) CountByOwner(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Task{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *gormTaskRepository) CountCompletedByOwner(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Task{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *gormTaskRepository) CountOverdueByOwner(userID string, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Task{}).
		Where("user_id = ? AND is_completed = ? AND due_date IS NOT NULL AND due_date < ?", userID, false, now).
		Count(&count).Error
	return count, err
}

func (r *gormTaskRepository) CountTasks() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Task{}).Count(&count).Error
	return count, err
}

func (r *gormTaskRepository) CountCompleted() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Task{}).Where("is_completed = ?", true).Count(&count).Error
	return count, err
}
