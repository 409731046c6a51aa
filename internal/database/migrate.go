package database

import (
	"conduit/internal/models"

	"gorm.io/gorm"
)

// Migrate runs GORM auto-migration for all domain models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Favorite{},
		&models.Follow{},
		&models.Comment{},
		&models.Tag{},
	)
}
