package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	appauth "github.com/rollcall/backend/internal/app/auth"
	"github.com/rollcall/backend/internal/app/models"
	"github.com/rollcall/backend/internal/app/models/dto"
	"github.com/rollcall/backend/internal/app/repositories"
	"github.com/rollcall/backend/internal/pkg/apperrors"
	"github.com/rollcall/backend/internal/pkg/metrics"
)

// codeAlphabet is the character set for attendance codes. Uppercase
// alphanumeric keeps codes easy to read aloud and type from a slide.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AttendanceService handles the attendance-code lifecycle: issuance by
// lecturers, redemption by students, and reporting.
type AttendanceService struct {
	codeRepo       repositories.IAttendanceCodeRepository
	attendanceRepo repositories.IAttendanceRepository
	userRepo       repositories.IUserRepository
	authzService   *appauth.AuthorizationService
	codeLength     int
	codeTTL        time.Duration
	now            func() time.Time
	logger         zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	codeRepo repositories.IAttendanceCodeRepository,
	attendanceRepo repositories.IAttendanceRepository,
	userRepo repositories.IUserRepository,
	authzService *appauth.AuthorizationService,
	codeLength int,
	codeTTL time.Duration,
	logger zerolog.Logger,
) *AttendanceService {
	if codeLength <= 0 {
		codeLength = 6
	}
	if codeTTL <= 0 {
		codeTTL = 15 * time.Minute
	}
	return &AttendanceService{
		codeRepo:       codeRepo,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		authzService:   authzService,
		codeLength:     codeLength,
		codeTTL:        codeTTL,
		now:            time.Now,
		logger:         logger,
	}
}

// generateCode produces a fixed-length uppercase alphanumeric token.
// Codes are not checked for collision against unexpired rows: redemption
// always targets the most recently created (course, code) pair, so a
// stale duplicate is shadowed rather than rejected.
func generateCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// IssueCode mints a new attendance code for a course. The caller must
// be the owning lecturer of the course.
func (s *AttendanceService) IssueCode(ctx context.Context, lecturerID, courseID string) (*models.AttendanceCode, error) {
	if strings.TrimSpace(lecturerID) == "" || strings.TrimSpace(courseID) == "" {
		return nil, apperrors.NewValidationError("lecturer_id and course_id are required")
	}

	if err := s.authzService.ValidateCourseOwnership(ctx, lecturerID, courseID); err != nil {
		return nil, err
	}

	token, err := generateCode(s.codeLength)
	if err != nil {
		return nil, err
	}

	createdAt := s.now()
	code := &models.AttendanceCode{
		CourseID:   courseID,
		Code:       token,
		CreatedBy:  lecturerID,
		CreatedAt:  createdAt,
		ValidUntil: createdAt.Add(s.codeTTL),
	}

	if err := s.codeRepo.Insert(ctx, code); err != nil {
		return nil, err
	}

	metrics.CodesIssued.Inc()
	s.logger.Info().
		Str("courseId", courseID).
		Str("lecturerId", lecturerID).
		Time("validUntil", code.ValidUntil).
		Msg("Attendance code issued")

	return code, nil
}

// SubmitAttendance redeems a code for a student. Each step is a
// precondition for the next; the store-level unique index on
// (student, course, code) is the authoritative duplicate guard, the
// explicit pre-check only short-circuits the common case.
func (s *AttendanceService) SubmitAttendance(ctx context.Context, studentID, courseID, code string) error {
	err := s.submitAttendance(ctx, studentID, courseID, code)
	metrics.Submissions.WithLabelValues(submissionResult(err)).Inc()
	return err
}

func (s *AttendanceService) submitAttendance(ctx context.Context, studentID, courseID, code string) error {
	if strings.TrimSpace(studentID) == "" || strings.TrimSpace(courseID) == "" || strings.TrimSpace(code) == "" {
		return apperrors.NewValidationError("student_id, course_id and code are required")
	}

	codeRow, err := s.codeRepo.GetLatest(ctx, courseID, code)
	if err != nil {
		return err
	}

	// Equality at valid_until is still valid; only strictly-after expires.
	if s.now().After(codeRow.ValidUntil) {
		return apperrors.ErrCodeExpired
	}

	student, err := s.userRepo.GetByIDAndRole(ctx, studentID, models.RoleStudent)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return err
	}

	exists, err := s.attendanceRepo.Exists(ctx, studentID, courseID, code)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrDuplicateSubmission
	}

	record := &models.AttendanceRecord{
		StudentID:   studentID,
		StudentName: student.Name,
		CourseID:    courseID,
		CodeUsed:    code,
		SubmittedAt: s.now(),
	}

	if err := s.attendanceRepo.Insert(ctx, record); err != nil {
		return err
	}

	s.logger.Info().
		Str("studentId", studentID).
		Str("courseId", courseID).
		Msg("Attendance recorded")

	return nil
}

// ListAttendance retrieves attendance rows for a course on one calendar
// date (YYYY-MM-DD), ordered by submission time ascending.
func (s *AttendanceService) ListAttendance(ctx context.Context, courseID, date string) (*dto.AttendanceListResponse, error) {
	if strings.TrimSpace(courseID) == "" || strings.TrimSpace(date) == "" {
		return nil, apperrors.NewValidationError("course_id and date are required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	records, err := s.attendanceRepo.ListByCourseDate(ctx, courseID, date)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AttendanceRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, dto.AttendanceRow{
			StudentID:   record.StudentID,
			StudentName: record.StudentName,
			SubmittedAt: record.SubmittedAt,
		})
	}

	return &dto.AttendanceListResponse{
		Total: len(rows),
		Rows:  rows,
	}, nil
}

func submissionResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, apperrors.ErrInvalidCode):
		return metrics.ResultInvalid
	case errors.Is(err, apperrors.ErrCodeExpired):
		return metrics.ResultExpired
	case errors.Is(err, apperrors.ErrDuplicateSubmission):
		return metrics.ResultDuplicate
	default:
		return metrics.ResultError
	}
}
