package db

import (
	"github.com/jteo/listify-backend/internal/app/model"
	"github.com/jteo/listify-backend/pkg/logger"
)

// Migrate runs database migrations. Drafts live in the draft store, not
// here; the database only holds accepted listings.
func Migrate() error {
	logger.Info("Running database migrations...", nil)

	models := []interface{}{
		&model.Listing{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err, nil)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
