package delivery

import (
	"net/http"
	"strings"

	"taskmanager-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// Context keys the middleware populates for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// AuthMiddleware rejects requests without a valid bearer token. A missing
// header and an invalid token are both a 401 to the caller.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		principal, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, principal.UserID)
		c.Set(ContextUsername, principal.Username)
		c.Next()
	}
}
