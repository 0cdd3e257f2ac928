package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rollcall/backend/internal/app/models"
	"github.com/rollcall/backend/internal/app/models/dto"
	"github.com/rollcall/backend/internal/app/repositories"
	"github.com/rollcall/backend/internal/pkg/apperrors"
	"github.com/rollcall/backend/internal/pkg/auth"
	"github.com/rollcall/backend/internal/pkg/validation"
)

// AdminService handles administrative user management.
type AdminService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(userRepo repositories.IUserRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUser retrieves any user's full profile by ID.
func (s *AdminService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CreateUser creates a student or lecturer account on a user's behalf.
func (s *AdminService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	id := strings.TrimSpace(req.ID)
	name := strings.TrimSpace(req.Name)
	if !validation.ValidIdentifier(id) {
		return nil, apperrors.NewValidationError("id must be 3-32 letters or digits")
	}
	if !validation.ValidName(name) {
		return nil, apperrors.NewValidationError("name must be between 2 and 100 characters")
	}
	if !validation.ValidPassword(req.Password) {
		return nil, apperrors.NewValidationError("password must be at least 6 characters")
	}
	role := models.Role(req.Role)
	if !models.ValidRole(role) {
		return nil, apperrors.NewValidationError("role must be student or lecturer")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:         id,
		Name:       name,
		Password:   hashed,
		Role:       role,
		Major:      req.Major,
		Department: req.Department,
		PhotoURL:   req.PhotoURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", user.ID).Str("role", string(user.Role)).Msg("User created by admin")
	return user, nil
}

// UpdateUser applies the non-nil fields of the request to a user record.
// A password field is re-hashed before storage.
func (s *AdminService) UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) error {
	fields := make(map[string]string)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Major != nil {
		fields["major"] = *req.Major
	}
	if req.PhotoURL != nil {
		fields["photo_url"] = *req.PhotoURL
	}
	if req.Password != nil {
		if !validation.ValidPassword(*req.Password) {
			return apperrors.NewValidationError("password must be at least 6 characters")
		}
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		fields["password"] = hashed
	}

	if len(fields) == 0 {
		return apperrors.NewValidationError("no valid fields to update")
	}

	if err := s.userRepo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}

	s.logger.Info().Str("userId", id).Int("fields", len(fields)).Msg("User updated by admin")
	return nil
}

// ResetPassword replaces a user's password with a newly hashed one.
func (s *AdminService) ResetPassword(ctx context.Context, id, newPassword string) error {
	if !validation.ValidPassword(newPassword) {
		return apperrors.NewValidationError("password must be at least 6 characters")
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, id, hashed); err != nil {
		return err
	}

	s.logger.Info().Str("userId", id).Msg("Password reset by admin")
	return nil
}

// DeleteUser removes a user account.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("userId", id).Msg("User deleted by admin")
	return nil
}
