package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rollcall/backend/internal/app/models"
	"github.com/rollcall/backend/internal/app/models/dto"
	"github.com/rollcall/backend/internal/app/repositories"
	"github.com/rollcall/backend/internal/pkg/apperrors"
)

// LecturerService handles lecturer profile and course management.
type LecturerService struct {
	userRepo   repositories.IUserRepository
	courseRepo repositories.ICourseRepository
	logger     zerolog.Logger
}

// NewLecturerService creates a new LecturerService
func NewLecturerService(
	userRepo repositories.IUserRepository,
	courseRepo repositories.ICourseRepository,
	logger zerolog.Logger,
) *LecturerService {
	return &LecturerService{
		userRepo:   userRepo,
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// GetProfile returns a lecturer's profile together with the courses they own.
func (s *LecturerService) GetProfile(ctx context.Context, lecturerID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByIDAndRole(ctx, lecturerID, models.RoleLecturer)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrLecturerNotFound
		}
		return nil, err
	}

	courses, err := s.courseRepo.GetByLecturer(ctx, lecturerID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{Profile: user, Courses: courses}, nil
}

// AddCourse creates a course owned by the lecturer, or takes ownership of
// an existing course with the same ID.
func (s *LecturerService) AddCourse(ctx context.Context, req *dto.AddCourseRequest) error {
	if strings.TrimSpace(req.LecturerID) == "" || strings.TrimSpace(req.CourseID) == "" || strings.TrimSpace(req.CourseName) == "" {
		return apperrors.NewValidationError("lecturer_id, course_id and course_name are required")
	}

	if _, err := s.userRepo.GetByIDAndRole(ctx, req.LecturerID, models.RoleLecturer); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrLecturerNotFound
		}
		return err
	}

	course := &models.Course{
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		LecturerID: &req.LecturerID,
	}
	if err := s.courseRepo.Upsert(ctx, course); err != nil {
		return err
	}

	s.logger.Info().Str("lecturerId", req.LecturerID).Str("courseId", req.CourseID).Msg("Course added")
	return nil
}

// DeleteCourse removes a course, but only when the lecturer owns it.
func (s *LecturerService) DeleteCourse(ctx context.Context, req *dto.DeleteCourseRequest) error {
	if strings.TrimSpace(req.LecturerID) == "" || strings.TrimSpace(req.CourseID) == "" {
		return apperrors.NewValidationError("lecturer_id and course_id are required")
	}

	deleted, err := s.courseRepo.DeleteOwned(ctx, req.CourseID, req.LecturerID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrCourseNotFound
	}

	s.logger.Info().Str("lecturerId", req.LecturerID).Str("courseId", req.CourseID).Msg("Course deleted")
	return nil
}
