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

// IAdminRepository defines the interface for admin account lookups
type IAdminRepository interface {
	GetByID(ctx context.Context, adminID string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
}

// AdminRepository handles admin database operations
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// GetByID retrieves an admin by its ID
func (r *AdminRepository) GetByID(ctx context.Context, adminID string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := r.db.QueryRow(ctx, `
		SELECT admin_id, name, password
		FROM admins
		WHERE admin_id = $1`,
		adminID).Scan(&admin.AdminID, &admin.Name, &admin.Password)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return admin, nil
}

// Create inserts an admin row if the ID is not already taken
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO admins (admin_id, name, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (admin_id) DO NOTHING`,
		admin.AdminID, admin.Name, admin.Password)

	if err != nil {
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}
