package usecase

import (
	authdomain "taskmanager-backend/internal/auth/domain"
	authdto "taskmanager-backend/internal/auth/dto"
)

// Principal is the authenticated identity resolved from a bearer token.
type Principal struct {
	UserID   string
	Username string
}

// AuthUsecase defines the interface for identity and token business logic
type AuthUsecase interface {
	// Register creates a new user and returns it. Fails when the username
	// or email is already taken.
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)

	// Login verifies credentials and returns a signed token response.
	Login(req *authdto.LoginRequest) (*authdto.LoginResponse, error)

	// ValidateToken checks signature and expiry and yields the principal
	// the token was issued for. Any failure means unauthenticated.
	ValidateToken(token string) (*Principal, error)
}
