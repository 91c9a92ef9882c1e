package database

import (
	"workreg_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate applies the schema for all registered models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Employer{},
		&models.Worker{},
		&models.Upload{},
	)
}
