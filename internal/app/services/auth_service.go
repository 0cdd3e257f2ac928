package services

import (
	"context"
	"errors"
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

// AuthService handles registration, login and token issuance.
type AuthService struct {
	userRepo   repositories.IUserRepository
	adminRepo  repositories.IAdminRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	adminRepo repositories.IAdminRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new student or lecturer account with a hashed password.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
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
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, err
	}

	s.logger.Info().Str("userId", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return &dto.RegisterResponse{OK: true, ID: user.ID}, nil
}

// Login authenticates a user and returns their profile with a signed token.
// Admin credentials are checked first so an admin ID colliding with a user
// ID resolves to the admin account.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("id and password are required")
	}

	if admin, err := s.adminRepo.GetByID(ctx, id); err == nil {
		if auth.CheckPassword(admin.Password, req.Password) {
			return s.buildLoginResponse(admin.AdminID, admin.Name, models.RoleAdmin, nil)
		}
		return nil, apperrors.ErrInvalidCredentials
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildLoginResponse(user.ID, user.Name, user.Role, user)
}

func (s *AuthService) buildLoginResponse(id, name string, role models.Role, profile *models.User) (*dto.LoginResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(id, name, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().Str("userId", id).Str("role", string(role)).Msg("User logged in")

	resp := &dto.LoginResponse{
		ID:        id,
		Name:      name,
		Role:      string(role),
		Token:     token,
		ExpiresIn: expiresIn,
	}
	if profile != nil {
		resp.Major = profile.Major
		resp.Department = profile.Department
		resp.PhotoURL = profile.PhotoURL
	}
	return resp, nil
}
