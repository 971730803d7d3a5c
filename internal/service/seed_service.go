package service

import (
	"context"

	"admin-api/db/seeder"
	"admin-api/internal/dto"
	"admin-api/internal/utils/errcode"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// SeedService exposes the seed run to the request surface.
type SeedService struct {
	db     *gorm.DB
	log    *logrus.Logger
	tracer trace.Tracer
}

func NewSeedService(db *gorm.DB, log *logrus.Logger) *SeedService {
	return &SeedService{db, log, otel.Tracer("SeedService")}
}

func (s *SeedService) RunSeed(ctx context.Context) (*dto.MessageResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "SeedService.RunSeed")
	defer span.End()

	if err := seeder.Run(spanCtx, s.db, s.log); err != nil {
		s.log.WithContext(spanCtx).WithError(err).Error("Seed run failed")
		return nil, errcode.ErrInternalServerError
	}

	return &dto.MessageResponse{Message: "Seed executed"}, nil
}
