package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/rollcall/backend/internal/app/models"
	appRepos "github.com/rollcall/backend/internal/app/repositories"
	"github.com/rollcall/backend/internal/config"
	"github.com/rollcall/backend/internal/pkg/auth"
)

// CreateDefaultData seeds the default admin account if it doesn't exist.
// The credentials come from ADMIN_ID / ADMIN_PASSWORD so deployments can
// override the development defaults.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)

	adminID := config.GetEnv("ADMIN_ID", "admin")
	adminName := config.GetEnv("ADMIN_NAME", "Administrator")
	adminPassword := config.GetEnv("ADMIN_PASSWORD", "admin123")

	lgr.Info().Str("adminId", adminID).Msg("Checking/Creating default admin account...")

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.Admin{
		AdminID:  adminID,
		Name:     adminName,
		Password: hashed,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	return nil
}
