package app

import (
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

// seedFirstAdmin creates the configured admin account on a fresh database so
// the admin-only endpoints are usable from the start. Skipped when no admin
// credentials are configured or an admin already exists.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Debug("Admin seeding skipped: no credentials configured")
		return nil
	}

	userRepo := repositories.NewUserRepository()

	count, err := userRepo.CountByRole(db, models.UserRoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Admin"
	}

	admin := &models.User{
		Name:         name,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}

	if err := userRepo.Create(db, admin); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return nil
		}
		return err
	}

	logger.Info("First admin user seeded", "email", cfg.Admin.Email)
	return nil
}
