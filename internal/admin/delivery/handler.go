package delivery

import (
	"errors"
	"net/http"

	"taskmanager-backend/internal/admin/usecase"
	"taskmanager-backend/internal/apperr"
	authdelivery "taskmanager-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles system-wide views behind the admin gate
type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

// GetStatistics returns system-wide counts
// GET /api/admin/statistics
func (h *AdminHandler) GetStatistics(c *gin.Context) {
	username := c.GetString(authdelivery.ContextUsername)

	stats, err := h.adminUsecase.SystemStatistics(username)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"statistics": stats,
	})
}

// GetAllUsers lists every user with their task count
// GET /api/admin/users
func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	username := c.GetString(authdelivery.ContextUsername)

	users, err := h.adminUsecase.ListUsers(username)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

func (h *AdminHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, apperr.ErrNotAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"message": "admin access required"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "admin operation failed"})
}
