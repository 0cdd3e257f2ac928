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

// StudentService handles student profile and enrollment operations.
type StudentService struct {
	userRepo       repositories.IUserRepository
	courseRepo     repositories.ICourseRepository
	enrollmentRepo repositories.IEnrollmentRepository
	logger         zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	userRepo repositories.IUserRepository,
	courseRepo repositories.ICourseRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// GetProfile returns a student's profile together with their enrolled courses.
func (s *StudentService) GetProfile(ctx context.Context, studentID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByIDAndRole(ctx, studentID, models.RoleStudent)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}

	courses, err := s.enrollmentRepo.CoursesByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{Profile: user, Courses: courses}, nil
}

// Enroll adds a student to a course, creating the course record on first
// reference. Enrolling twice in the same course is a no-op.
func (s *StudentService) Enroll(ctx context.Context, req *dto.EnrollRequest) error {
	if strings.TrimSpace(req.StudentID) == "" || strings.TrimSpace(req.CourseID) == "" {
		return apperrors.NewValidationError("student_id and course_id are required")
	}

	if _, err := s.userRepo.GetByIDAndRole(ctx, req.StudentID, models.RoleStudent); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return err
	}

	if err := s.courseRepo.EnsureExists(ctx, req.CourseID, req.CourseName); err != nil {
		return err
	}
	if err := s.enrollmentRepo.Enroll(ctx, req.StudentID, req.CourseID); err != nil {
		return err
	}

	s.logger.Info().Str("studentId", req.StudentID).Str("courseId", req.CourseID).Msg("Student enrolled")
	return nil
}

// Unenroll removes a student from a course.
func (s *StudentService) Unenroll(ctx context.Context, req *dto.UnenrollRequest) error {
	if strings.TrimSpace(req.StudentID) == "" || strings.TrimSpace(req.CourseID) == "" {
		return apperrors.NewValidationError("student_id and course_id are required")
	}

	removed, err := s.enrollmentRepo.Unenroll(ctx, req.StudentID, req.CourseID)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrResourceNotFound
	}

	s.logger.Info().Str("studentId", req.StudentID).Str("courseId", req.CourseID).Msg("Student unenrolled")
	return nil
}
