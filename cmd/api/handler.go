package api

import (
	adminUsecasePkg "taskmanager-backend/internal/admin/usecase"
	authUsecasePkg "taskmanager-backend/internal/auth/usecase"
	taskUsecasePkg "taskmanager-backend/internal/task/usecase"
	"taskmanager-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase  authUsecasePkg.AuthUsecase
	taskUsecase  taskUsecasePkg.TaskUsecase
	adminUsecase adminUsecasePkg.AdminUsecase
	config       *config.Config
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase, adminUc adminUsecasePkg.AdminUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:  authUc,
		taskUsecase:  taskUc,
		adminUsecase: adminUc,
		config:       cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.taskUsecase, h.adminUsecase)

	return r.Run(addr)
}
