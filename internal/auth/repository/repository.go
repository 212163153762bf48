package repository

import (
	"time"

	authdomain "taskmanager-backend/internal/auth/domain"
)

// RegistrationBucket is a per-calendar-date count of user creations.
type RegistrationBucket struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

// UserWithTaskCount is the admin listing projection of a user.
type UserWithTaskCount struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	TaskCount int64     `json:"taskCount"`
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByUsername(username string) (*authdomain.User, error)
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)

	// admin support queries
	CountUsers() (int64, error)
	CountActiveUsers() (int64, error)
	RecentRegistrations(days int) ([]RegistrationBucket, error)
	ListWithTaskCounts() ([]UserWithTaskCount, error)
}
