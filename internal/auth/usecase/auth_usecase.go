package usecase

import (
	"time"

	"taskmanager-backend/internal/apperr"
	authdomain "taskmanager-backend/internal/auth/domain"
	authdto "taskmanager-backend/internal/auth/dto"
	"taskmanager-backend/internal/auth/repository"
	"taskmanager-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims embeds the registered claim set so expiry is checked by the
// jwt library during parsing. Issuer and audience are deliberately not set
// or validated.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	jwtExpiry time.Duration
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		jwtExpiry: cfg.JWTExpiry,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrUsernameTaken
	}

	existing, err = u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.LoginResponse, error) {
	user, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperr.ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &authdto.LoginResponse{
		Message:  "Login successful",
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

func (u *authUsecase) issueToken(user *authdomain.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.jwtExpiry)),
		},
		UserID:   user.ID,
		Username: user.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.jwtSecret)
}

func (u *authUsecase) ValidateToken(tokenString string) (*Principal, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return u.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.ErrInvalidToken
	}

	if claims.UserID == "" {
		return nil, apperr.ErrInvalidToken
	}

	return &Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}
