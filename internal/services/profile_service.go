package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/OriDaer/Portfolio/internal/models"
	"github.com/OriDaer/Portfolio/internal/repositories"
	"go.uber.org/zap"
)

// ErrUserNotFound is returned when the owner row a session refers to no
// longer exists.
var ErrUserNotFound = errors.New("user not found")

// ProfileService defines the interface for owner profile operations
type ProfileService interface {
	GetByUsername(ctx context.Context, username string) (*models.Usuario, error)
	UpdateProfile(ctx context.Context, username, nombrePublico string) error
	SetProfileImage(ctx context.Context, username, filename string) error
	UpdateAcercaDeMi(ctx context.Context, username, acerca string) error
}

type profileServiceImpl struct {
	userRepo   repositories.UserRepository
	fileLogger *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo repositories.UserRepository, fileLogger *zap.Logger) ProfileService {
	return &profileServiceImpl{
		userRepo:   userRepo,
		fileLogger: fileLogger,
	}
}

// GetByUsername retrieves the profile for the given username.
func (s *profileServiceImpl) GetByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	s.fileLogger.Debug("Fetching profile", zap.String("username", username))

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		s.fileLogger.Error("Error fetching profile from repository", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("could not retrieve profile: %w", err)
	}
	if user == nil {
		s.fileLogger.Warn("Profile requested for non-existent username", zap.String("username", username))
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile overwrites the public display name.
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, username, nombrePublico string) error {
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateProfile(ctx, user.ID, nombrePublico); err != nil {
		return fmt.Errorf("could not update profile: %w", err)
	}
	s.fileLogger.Info("Profile display name updated", zap.String("username", username))
	return nil
}

// SetProfileImage records the stored profile image filename.
func (s *profileServiceImpl) SetProfileImage(ctx context.Context, username, filename string) error {
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateProfileImage(ctx, user.ID, filename); err != nil {
		return fmt.Errorf("could not update profile image: %w", err)
	}
	s.fileLogger.Info("Profile image updated", zap.String("username", username), zap.String("filename", filename))
	return nil
}

// UpdateAcercaDeMi overwrites the free-text bio shown on the landing page.
func (s *profileServiceImpl) UpdateAcercaDeMi(ctx context.Context, username, acerca string) error {
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateAcercaDeMi(ctx, user.ID, acerca); err != nil {
		return fmt.Errorf("could not update about text: %w", err)
	}
	s.fileLogger.Info("About section updated", zap.String("username", username))
	return nil
}
