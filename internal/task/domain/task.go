package domain

import "time"

// Task is a to-do item owned by exactly one user. Owner and creation time
// are set once at creation and never change.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsCompleted bool       `json:"isCompleted" gorm:"default:false"`
	CreatedAt   time.Time  `json:"createdAt"`
	UserID      string     `json:"userId" gorm:"index;not null"`
}

// Filter selects tasks by completion state when listing.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)
