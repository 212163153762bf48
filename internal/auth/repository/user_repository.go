package repository

import (
	"errors"
	"time"

	authdomain "taskmanager-backend/internal/auth/domain"
	taskdomain "taskmanager-backend/internal/task/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *authdomain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *userRepository) FindByUsername(username string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&authdomain.User{}).Count(&count).Error
	return count, err
}

// CountActiveUsers counts distinct users owning at least one task.
func (r *userRepository) CountActiveUsers() (int64, error) {
	var count int64
	err := r.db.Model(&taskdomain.Task{}).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

// RecentRegistrations groups user creations by calendar date, most recent
// dates first, limited to the given number of distinct dates.
func (r *userRepository) RecentRegistrations(days int) ([]RegistrationBucket, error) {
	var buckets []RegistrationBucket
	err := r.db.Model(&authdomain.User{}).
		Select("DATE(created_at) AS date, COUNT(*) AS count").
		Group("DATE(created_at)").
		Order("date DESC").
		Limit(days).
		Scan(&buckets).Error
	return buckets, err
}

func (r *userRepository) ListWithTaskCounts() ([]UserWithTaskCount, error) {
	var users []UserWithTaskCount
	err := r.db.Model(&authdomain.User{}).
		Select("users.id, users.username, users.email, users.name, users.created_at, " +
			"(SELECT COUNT(*) FROM tasks WHERE tasks.user_id = users.id) AS task_count").
		Order("users.created_at DESC").
		Scan(&users).Error
	return users, err
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash. A malformed hash is a
// plain verification failure.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
