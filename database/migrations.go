package database

import (
	"daylist-app/daylist/models"

	"gorm.io/gorm"
)

// RunMigrations keeps the user and todo tables up to date.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Todo{},
	)
}
