package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rollcall/backend/internal/app/models"
)

// IEnrollmentRepository defines the interface for enrollment database operations
type IEnrollmentRepository interface {
	Enroll(ctx context.Context, studentID, courseID string) error
	Unenroll(ctx context.Context, studentID, courseID string) (bool, error)
	CoursesByStudent(ctx context.Context, studentID string) ([]models.Course, error)
}

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Enroll records a student/course pair. Re-enrolling is a no-op.
func (r *EnrollmentRepository) Enroll(ctx context.Context, studentID, courseID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (student_id, course_id) DO NOTHING`,
		studentID, courseID)

	if err != nil {
		return fmt.Errorf("error enrolling student: %w", err)
	}

	return nil
}

// Unenroll removes exactly the one matching enrollment pair.
// Returns whether a row was removed.
func (r *EnrollmentRepository) Unenroll(ctx context.Context, studentID, courseID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM enrollments
		WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)

	if err != nil {
		return false, fmt.Errorf("error unenrolling student: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// CoursesByStudent retrieves the courses a student is enrolled in
func (r *EnrollmentRepository) CoursesByStudent(ctx context.Context, studentID string) ([]models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.course_id, c.course_name, c.lecturer_id
		FROM enrollments e
		JOIN courses c ON e.course_id = c.course_id
		WHERE e.student_id = $1
		ORDER BY c.course_id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.CourseID, &course.CourseName, &course.LecturerID); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}
