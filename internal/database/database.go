package database

import (
	"fmt"
	"os"

	"github.com/vidyaquiz/vidyaquiz-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates or updates the schema.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.OTP{},
		&models.Class{},
		&models.Subject{},
		&models.Chapter{},
		&models.Question{},
	)
	if err != nil {
		return err
	}

	// Accounts created before the admin panel predate this column.
	if db.Migrator().HasTable(&models.User{}) {
		if err := db.Exec(`ALTER TABLE users ADD COLUMN IF NOT EXISTS is_admin boolean DEFAULT false`).Error; err != nil {
			return err
		}
	}

	return nil
}
