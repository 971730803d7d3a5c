package main

import (
	"context"

	"admin-api/db/seeder"
	"admin-api/internal/config/database"
	"admin-api/internal/config/env"
	"admin-api/internal/config/logger"
)

func main() {
	config := env.NewConfig()
	log := logger.NewLogger(config)
	db := database.NewDatabase(log, config)

	if err := database.RunMigrations(db, log); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	if err := seeder.Run(context.Background(), db, log); err != nil {
		log.WithError(err).Fatal("seed run failed")
	}
}
