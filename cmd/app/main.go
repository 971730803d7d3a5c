package main

import (
	app "admin-api/internal"
	"admin-api/internal/config/database"
	"admin-api/internal/config/env"
	"admin-api/internal/config/logger"
	"admin-api/internal/config/monitor"
	"admin-api/internal/config/redis"
	"admin-api/internal/config/validation"
	"admin-api/internal/config/web"
)

func main() {
	config := env.NewConfig()
	log := logger.NewLogger(config)
	web := web.NewFiber(log, config)
	redis := redis.NewRedis(log, config)
	db := database.NewDatabase(log, config)
	monitoring := monitor.NewMonitoring(log, config)
	validation := validation.NewValidation()
	defer monitoring.Shutdown()

	if err := database.RunMigrations(db, log); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	server := app.NewApp(log, config, db, web, validation, redis)
	server.Run()
}
