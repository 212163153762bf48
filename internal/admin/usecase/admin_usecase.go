package usecase

import (
	"taskmanager-backend/internal/apperr"
	userrepo "taskmanager-backend/internal/auth/repository"
	taskrepo "taskmanager-backend/internal/task/repository"
	"taskmanager-backend/pkg/config"
)

// SystemStatistics are the cross-user counts visible behind the admin gate.
type SystemStatistics struct {
	TotalUsers          int64                         `json:"totalUsers"`
	TotalTasks          int64                         `json:"totalTasks"`
	CompletedTasks      int64                         `json:"completedTasks"`
	ActiveUsers         int64                         `json:"activeUsers"`
	RecentRegistrations []userrepo.RegistrationBucket `json:"recentRegistrations"`
}

// AdminUsecase defines the interface for system-wide views guarded by the
// single-admin gate
type AdminUsecase interface {
	IsAdmin(username string) bool
	SystemStatistics(username string) (*SystemStatistics, error)
	ListUsers(username string) ([]userrepo.UserWithTaskCount, error)
}

// adminUsecase implements AdminUsecase interface
type adminUsecase struct {
	userRepo      userrepo.UserRepository
	taskRepo      taskrepo.TaskRepository
	adminUsername string
}

// NewAdminUsecase creates a new instance of adminUsecase. The admin identity
// comes from configuration, not from code.
func NewAdminUsecase(userRepo userrepo.UserRepository, taskRepo taskrepo.TaskRepository, cfg *config.Config) AdminUsecase {
	return &adminUsecase{
		userRepo:      userRepo,
		taskRepo:      taskRepo,
		adminUsername: cfg.AdminUsername,
	}
}

func (u *adminUsecase) IsAdmin(username string) bool {
	return u.adminUsername != "" && username == u.adminUsername
}

func (u *adminUsecase) SystemStatistics(username string) (*SystemStatistics, error) {
	if !u.IsAdmin(username) {
		return nil, apperr.ErrNotAdmin
	}

	totalUsers, err := u.userRepo.CountUsers()
	if err != nil {
		return nil, err
	}

	totalTasks, err := u.taskRepo.CountTasks()
	if err != nil {
		return nil, err
	}

	completedTasks, err := u.taskRepo.CountCompleted()
	if err != nil {
		return nil, err
	}

	activeUsers, err := u.userRepo.CountActiveUsers()
	if err != nil {
		return nil, err
	}

	registrations, err := u.userRepo.RecentRegistrations(7)
	if err != nil {
		return nil, err
	}

	return &SystemStatistics{
		TotalUsers:          totalUsers,
		TotalTasks:          totalTasks,
		CompletedTasks:      completedTasks,
		ActiveUsers:         activeUsers,
		RecentRegistrations: registrations,
	}, nil
}

func (u *adminUsecase) ListUsers(username string) ([]userrepo.UserWithTaskCount, error) {
	if !u.IsAdmin(username) {
		return nil, apperr.ErrNotAdmin
	}
	return u.userRepo.ListWithTaskCounts()
}
