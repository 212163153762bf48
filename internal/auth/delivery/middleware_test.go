package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"taskmanager-backend/internal/apperr"
	authdomain "taskmanager-backend/internal/auth/domain"
	authdto "taskmanager-backend/internal/auth/dto"
	"taskmanager-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthUsecase struct {
	principal *usecase.Principal
}

func (s *stubAuthUsecase) ValidateToken(token string) (*usecase.Principal, error) {
	if s.principal != nil && token == "good-token" {
		return s.principal, nil
	}
	return nil, apperr.ErrInvalidToken
}

// not reached by the middleware
func (s *stubAuthUsecase) Register(*authdto.RegisterRequest) (*authdomain.User, error) {
	return nil, nil
}

func (s *stubAuthUsecase) Login(*authdto.LoginRequest) (*authdto.LoginResponse, error) {
	return nil, nil
}

func newMiddlewareRouter(uc usecase.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(uc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetString(ContextUserID),
			"username": c.GetString(ContextUsername),
		})
	})
	return r
}

func request(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	uc := &stubAuthUsecase{principal: &usecase.Principal{UserID: "u1", Username: "alice"}}
	r := newMiddlewareRouter(uc)

	assert.Equal(t, http.StatusUnauthorized, request(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, "good-token").Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, "Basic good-token").Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, "Bearer bad-token").Code)

	w := request(r, "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"u1"`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}
