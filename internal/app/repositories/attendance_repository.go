package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rollcall/backend/internal/app/models"
	"github.com/rollcall/backend/internal/pkg/apperrors"
	"github.com/rollcall/backend/internal/pkg/dberrors"
)

// uniqueSubmissionConstraint is the unique index on
// (student_id, course_id, code_used); see migrations/001_init.sql.
const uniqueSubmissionConstraint = "attendance_student_course_code_key"

// IAttendanceRepository defines the interface for attendance record persistence
type IAttendanceRepository interface {
	Exists(ctx context.Context, studentID, courseID, code string) (bool, error)
	Insert(ctx context.Context, record *models.AttendanceRecord) error
	ListByCourseDate(ctx context.Context, courseID, date string) ([]models.AttendanceRecord, error)
}

// AttendanceRepository handles attendance record database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Exists checks whether the student already redeemed this exact code for
// this course. This is a fast-path check only; the unique index is the
// correctness mechanism under concurrent submissions.
func (r *AttendanceRepository) Exists(ctx context.Context, studentID, courseID, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM attendance
			WHERE student_id = $1 AND course_id = $2 AND code_used = $3
		)`,
		studentID, courseID, code).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking attendance: %w", err)
	}

	return exists, nil
}

// Insert appends an attendance record. A unique violation on the
// (student, course, code) index means a concurrent duplicate won the
// race and is surfaced as ErrDuplicateSubmission, not a server fault.
func (r *AttendanceRepository) Insert(ctx context.Context, record *models.AttendanceRecord) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO attendance (student_id, student_name, course_id, code_used, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		record.StudentID, record.StudentName, record.CourseID, record.CodeUsed, record.SubmittedAt).Scan(&record.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, uniqueSubmissionConstraint) {
			return apperrors.ErrDuplicateSubmission
		}
		return fmt.Errorf("error inserting attendance: %w", err)
	}

	return nil
}

// ListByCourseDate retrieves attendance for a course on one calendar
// date, ordered by submission time ascending. Date truncation uses the
// store session timezone, matching how rows were stamped on insert.
func (r *AttendanceRepository) ListByCourseDate(ctx context.Context, courseID, date string) ([]models.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, student_name, course_id, code_used, submitted_at
		FROM attendance
		WHERE course_id = $1 AND submitted_at::date = $2::date
		ORDER BY submitted_at`,
		courseID, date)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	defer rows.Close()

	records := make([]models.AttendanceRecord, 0)
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(
			&record.ID, &record.StudentID, &record.StudentName,
			&record.CourseID, &record.CodeUsed, &record.SubmittedAt); err != nil {
			return nil, fmt.Errorf("error scanning attendance: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
