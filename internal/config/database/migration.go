package database

import (
	"admin-api/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB, log *logrus.Logger) error {
	log.Info("Starting database migrations")

	if err := db.AutoMigrate(
		&model.Country{},
		&model.Permission{},
		&model.Role{},
		&model.User{},
	); err != nil {
		log.WithError(err).Error("Failed to run migrations")
		return err
	}

	log.Info("Database migrations completed successfully")
	return nil
}
