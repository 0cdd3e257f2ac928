package auth

import (
	"context"
	"errors"

	"github.com/rollcall/backend/internal/app/models"
	"github.com/rollcall/backend/internal/app/repositories"
	"github.com/rollcall/backend/internal/pkg/apperrors"
)

// Authorization errors not covered by the central apperrors taxonomy
var (
	ErrNotLecturer = errors.New("only lecturers can perform this action")
)

// AuthorizationService centralizes role and ownership checks so that
// operations consult one place instead of trusting caller-supplied IDs.
type AuthorizationService struct {
	userRepo   repositories.IUserRepository
	courseRepo repositories.ICourseRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.IUserRepository, courseRepo repositories.ICourseRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo:   userRepo,
		courseRepo: courseRepo,
	}
}

// IsLecturer checks if the user holds the lecturer role
func (s *AuthorizationService) IsLecturer(ctx context.Context, userID string) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, apperrors.ErrLecturerNotFound
		}
		return false, err
	}
	return user.Role == models.RoleLecturer, nil
}

// ValidateLecturer validates that the user is a lecturer or returns an error
func (s *AuthorizationService) ValidateLecturer(ctx context.Context, userID string) error {
	isLecturer, err := s.IsLecturer(ctx, userID)
	if err != nil {
		return err
	}

	if !isLecturer {
		return ErrNotLecturer
	}

	return nil
}

// ValidateCourseOwnership checks that the lecturer owns the course.
// Code issuance consults this before minting, so an arbitrary lecturer
// ID cannot mint codes for someone else's course.
func (s *AuthorizationService) ValidateCourseOwnership(ctx context.Context, lecturerID, courseID string) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	if course.LecturerID == nil || *course.LecturerID != lecturerID {
		return apperrors.ErrPermissionDenied
	}

	return nil
}
