package main

import (
	"log/slog"
	"os"

	api "taskmanager-backend/cmd/api"
	adminUsecase "taskmanager-backend/internal/admin/usecase"
	authdomain "taskmanager-backend/internal/auth/domain"
	authRepo "taskmanager-backend/internal/auth/repository"
	authUsecase "taskmanager-backend/internal/auth/usecase"
	taskdomain "taskmanager-backend/internal/task/domain"
	taskRepo "taskmanager-backend/internal/task/repository"
	taskUsecase "taskmanager-backend/internal/task/usecase"
	"taskmanager-backend/pkg/config"
	"taskmanager-backend/pkg/database"
)

func setupSlog() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	setupSlog()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		slog.Error("database_connection_failed", "error", err)
		os.Exit(1)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		slog.Error("database_migration_failed", "error", err)
		os.Exit(1)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)
	adminUsecaseInstance := adminUsecase.NewAdminUsecase(userRepository, taskRepository, cfg)

	if cfg.AdminUsername == "" {
		slog.Warn("admin_username_not_configured", "detail", "admin endpoints will deny every caller")
	}

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, adminUsecaseInstance, cfg)

	slog.Info("server_starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		slog.Error("server_start_failed", "error", err)
		os.Exit(1)
	}
}
