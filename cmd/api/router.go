package api

import (
	"net/http"

	adminDelivery "taskmanager-backend/internal/admin/delivery"
	adminUsecase "taskmanager-backend/internal/admin/usecase"
	"taskmanager-backend/internal/auth/delivery"
	authUsecase "taskmanager-backend/internal/auth/usecase"
	taskDelivery "taskmanager-backend/internal/task/delivery"
	taskUsecasePkg "taskmanager-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase, adminUc adminUsecase.AdminUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)
	adminHandler := adminDelivery.NewAdminHandler(adminUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Task routes. Listing and fetch-by-id are reachable without a
		// token and return tasks across all owners; every mutation and
		// the per-user statistics require a valid bearer token.
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetTasks)

			protected := tasks.Group("")
			protected.Use(delivery.AuthMiddleware(authUc))
			{
				protected.POST("", taskHandler.CreateTask)
				protected.GET("/statistics", taskHandler.GetStatistics)
				protected.PUT("/:id", taskHandler.UpdateTask)
				protected.DELETE("/:id", taskHandler.DeleteTask)
				protected.PATCH("/:id/complete", taskHandler.MarkComplete)
				protected.PATCH("/:id/incomplete", taskHandler.MarkIncomplete)
			}

			tasks.GET("/:id", taskHandler.GetTaskByID)
		}

		// Admin routes (protected + single-admin gate)
		admin := api.Group("/admin")
		admin.Use(delivery.AuthMiddleware(authUc))
		{
			admin.GET("/statistics", adminHandler.GetStatistics)
			admin.GET("/users", adminHandler.GetAllUsers)
		}
	}
}
