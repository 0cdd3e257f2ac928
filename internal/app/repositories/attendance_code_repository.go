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

// IAttendanceCodeRepository defines the interface for attendance code persistence
type IAttendanceCodeRepository interface {
	Insert(ctx context.Context, code *models.AttendanceCode) error
	GetLatest(ctx context.Context, courseID, code string) (*models.AttendanceCode, error)
}

// AttendanceCodeRepository handles attendance code database operations
type AttendanceCodeRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceCodeRepository creates a new AttendanceCodeRepository
func NewAttendanceCodeRepository(db *pgxpool.Pool) *AttendanceCodeRepository {
	return &AttendanceCodeRepository{
		db: db,
	}
}

// Insert appends a new attendance code row. Codes are never deduplicated
// across calls; redemption resolves the most recent row for a pair.
func (r *AttendanceCodeRepository) Insert(ctx context.Context, code *models.AttendanceCode) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO attendance_codes (course_id, code, created_by, created_at, valid_until)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		code.CourseID, code.Code, code.CreatedBy, code.CreatedAt, code.ValidUntil).Scan(&code.ID)

	if err != nil {
		return fmt.Errorf("error inserting attendance code: %w", err)
	}

	return nil
}

// GetLatest resolves the most recently created code row for a
// (course, code) pair. Store ordering is authoritative; the service
// keeps no in-memory index of valid codes.
func (r *AttendanceCodeRepository) GetLatest(ctx context.Context, courseID, code string) (*models.AttendanceCode, error) {
	row := &models.AttendanceCode{}
	err := r.db.QueryRow(ctx, `
		SELECT id, course_id, code, created_by, created_at, valid_until
		FROM attendance_codes
		WHERE course_id = $1 AND code = $2
		ORDER BY created_at DESC
		LIMIT 1`,
		courseID, code).Scan(
		&row.ID, &row.CourseID, &row.Code, &row.CreatedBy, &row.CreatedAt, &row.ValidUntil)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidCode
		}
		return nil, fmt.Errorf("error retrieving attendance code: %w", err)
	}

	return row, nil
}
