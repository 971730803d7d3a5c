package controller

import (
	"admin-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type SeedController struct {
	seedService *service.SeedService
	logger      *logrus.Logger
	tracer      trace.Tracer
}

func NewSeedController(seedService *service.SeedService, logger *logrus.Logger) *SeedController {
	return &SeedController{seedService, logger, otel.Tracer("SeedController")}
}

func (c *SeedController) Run(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "Run")
	defer span.End()

	acknowledgement, err := c.seedService.RunSeed(userContext)
	if err != nil {
		return err
	}

	return ctx.JSON(acknowledgement)
}
