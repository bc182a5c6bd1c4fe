package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/studentms/backend/config"
	"github.com/studentms/backend/models"
)

// Connect opens the PostgreSQL connection described by cfg.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
}

// Migrate brings the schema up to date. Idempotent; run once before serving.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Student{},
		&models.Attendance{},
		&models.Fee{},
		&models.User{},
	)
}
