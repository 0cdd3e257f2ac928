package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rollcall/backend/internal/app/models"
	"github.com/rollcall/backend/internal/pkg/apperrors"
)

// ICourseRepository defines the interface for course database operations
type ICourseRepository interface {
	GetByID(ctx context.Context, courseID string) (*models.Course, error)
	EnsureExists(ctx context.Context, courseID, courseName string) error
	Upsert(ctx context.Context, course *models.Course) error
	GetByLecturer(ctx context.Context, lecturerID string) ([]models.Course, error)
	DeleteOwned(ctx context.Context, courseID, lecturerID string) (bool, error)
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// GetByID retrieves a course by its ID
func (r *CourseRepository) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	course := &models.Course{}
	err := r.db.QueryRow(ctx, `
		SELECT course_id, course_name, lecturer_id
		FROM courses
		WHERE course_id = $1`,
		courseID).Scan(&course.CourseID, &course.CourseName, &course.LecturerID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// EnsureExists inserts the course if it is not already present. A
// concurrent insert with a different name keeps whichever row landed
// first; enrollment never rewrites course content.
func (r *CourseRepository) EnsureExists(ctx context.Context, courseID, courseName string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO courses (course_id, course_name)
		VALUES ($1, $2)
		ON CONFLICT (course_id) DO NOTHING`,
		courseID, courseName)

	if err != nil {
		return fmt.Errorf("error ensuring course: %w", err)
	}

	return nil
}

// Upsert creates the course or, on conflict, rewrites its name and
// lecturer assignment. Used by the lecturer add-course flow where the
// caller becomes the owner.
func (r *CourseRepository) Upsert(ctx context.Context, course *models.Course) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO courses (course_id, course_name, lecturer_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (course_id) DO UPDATE
		SET course_name = EXCLUDED.course_name, lecturer_id = EXCLUDED.lecturer_id`,
		course.CourseID, course.CourseName, course.LecturerID)

	if err != nil {
		return fmt.Errorf("error upserting course: %w", err)
	}

	return nil
}

// GetByLecturer retrieves all courses owned by a lecturer
func (r *CourseRepository) GetByLecturer(ctx context.Context, lecturerID string) ([]models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT course_id, course_name, lecturer_id
		FROM courses
		WHERE lecturer_id = $1
		ORDER BY course_id`,
		lecturerID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
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

// DeleteOwned deletes a course only if the given lecturer owns it.
// Returns whether a row was actually removed.
func (r *CourseRepository) DeleteOwned(ctx context.Context, courseID, lecturerID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM courses
		WHERE course_id = $1 AND lecturer_id = $2`,
		courseID, lecturerID)

	if err != nil {
		return false, fmt.Errorf("error deleting course: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
