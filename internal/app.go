package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"admin-api/internal/config/env"
	"admin-api/internal/config/validation"
	"admin-api/internal/constant"
	"admin-api/internal/controller"
	"admin-api/internal/middleware"
	"admin-api/internal/repository"
	"admin-api/internal/route"
	"admin-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	db         *gorm.DB
	web        *fiber.App
	log        *logrus.Logger
	config     *env.Config
	validation *validation.Validation
	redis      *redis.Client
}

func NewApp(log *logrus.Logger, config *env.Config, db *gorm.DB, web *fiber.App, validation *validation.Validation, redis *redis.Client) *BootstrapConfig {
	return &BootstrapConfig{db, web, log, config, validation, redis}
}

func (app *BootstrapConfig) Bootstrap() {
	// setup repositories
	userRepository := repository.NewUserRepository(app.db)
	countryRepository := repository.NewCountryRepository(app.db)

	// setup services
	jwtService := service.NewJwtService(app.log, app.config)
	redisService := service.NewRedisService(app.redis, app.log)
	userService := service.NewUserService(userRepository, countryRepository, redisService, app.log, app.config.GetCacheTTL())
	seedService := service.NewSeedService(app.db, app.log)

	// setup controller
	welcomeController := controller.NewWelcomeController()
	userController := controller.NewUserController(userService, app.log, app.validation)
	seedController := controller.NewSeedController(seedService, app.log)

	// setup guard pipeline stages
	authenticate := middleware.AuthMiddleware(jwtService, userRepository, app.log)
	authorize := func(required ...constant.Permission) fiber.Handler {
		return middleware.RequirePermissions(app.log, required...)
	}

	// setup route
	routeConfig := route.NewRouteConfig(app.web)
	routeConfig.WelcomeRoutes(welcomeController)
	routeConfig.RegisterUserRoutes(userController, authenticate, authorize)
	routeConfig.RegisterSeedRoutes(seedController, authenticate, authorize)
}

func (app *BootstrapConfig) Run() {
	app.Bootstrap()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return app.web.Listen(fmt.Sprintf(":%d", app.config.Web.Port))
	})

	group.Go(func() error {
		<-groupCtx.Done()
		app.log.Info("Shutting down server")
		return app.web.ShutdownWithTimeout(10 * time.Second)
	})

	if err := group.Wait(); err != nil {
		app.log.Fatalf("Failed to start server: %v", err)
	}
}
