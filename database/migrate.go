package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
)

// Connect opens the single GORM handle for the process. Lifecycle is owned by
// the caller (app.Run); nothing here retains global state.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}
	return db, nil
}

// ConnectFromConfig opens a handle using the loaded configuration.
func ConnectFromConfig() (*gorm.DB, error) {
	cfg := config.GetConfig()
	return Connect(cfg.Database.DSN)
}

// AutoMigrate creates or updates the schema for all models and the auxiliary
// indexes the listing endpoint depends on.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	// Full-text index backing the text-ranked listing mode. plainto_tsquery
	// against this expression must match the repository's search predicate.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_jobs_fulltext ON jobs
		USING GIN (to_tsvector('english',
			coalesce(title,'') || ' ' || coalesce(description,'') || ' ' ||
			coalesce(company,'') || ' ' || coalesce(location,'')))
	`).Error; err != nil {
		return fmt.Errorf("full-text index creation failed: %w", err)
	}

	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at DESC)`).Error; err != nil {
		return fmt.Errorf("created_at index creation failed: %w", err)
	}

	return nil
}
