package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/OriDaer/Portfolio/internal/repositories"
	"github.com/OriDaer/Portfolio/internal/utils"
	"go.uber.org/zap"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password.
// Callers must not distinguish the two; the login form always shows the same
// message to avoid account enumeration.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService defines the interface for authentication related operations
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error) // Returns a session token
}

type authServiceImpl struct {
	userRepo       repositories.UserRepository
	logger         *zap.Logger
	secretKey      string
	sessionExpires time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, logger *zap.Logger, secretKey string) AuthService {
	return &authServiceImpl{
		userRepo:       userRepo,
		logger:         logger,
		secretKey:      secretKey,
		sessionExpires: 24 * time.Hour,
	}
}

// Login verifies the submitted credentials and returns a signed session token.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	s.logger.Info("Attempting to login user", zap.String("username", username))

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Error("Error finding user during login", zap.String("username", username), zap.Error(err))
		return "", fmt.Errorf("login lookup failed: %w", err)
	}
	if user == nil {
		s.logger.Warn("Login attempt failed: user not found", zap.String("username", username))
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.logger.Warn("Login attempt failed: invalid password", zap.String("username", username))
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(user.Username, s.secretKey, s.sessionExpires)
	if err != nil {
		s.logger.Error("Failed to generate session token during login", zap.String("username", username), zap.Error(err))
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	s.logger.Info("User logged in successfully", zap.String("username", username), zap.Int64("userID", user.ID))
	return token, nil
}
