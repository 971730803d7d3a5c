package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"admin-api/internal/dto"
	"admin-api/internal/dto/converter"
	"admin-api/internal/model"
	"admin-api/internal/repository"
	"admin-api/internal/utils/errcode"
	"admin-api/internal/utils/searchterm"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// UserService is the user directory: listing, term lookup and lifecycle
// mutation of users.
type UserService struct {
	userRepository    *repository.UserRepository
	countryRepository *repository.CountryRepository
	redisService      *RedisService
	log               *logrus.Logger
	tracer            trace.Tracer
	cacheTTL          time.Duration
	hashPassword      func(password []byte, cost int) ([]byte, error)
}

func NewUserService(userRepository *repository.UserRepository, countryRepository *repository.CountryRepository, redisService *RedisService, log *logrus.Logger, cacheTTL time.Duration) *UserService {
	return &UserService{
		userRepository:    userRepository,
		countryRepository: countryRepository,
		redisService:      redisService,
		log:               log,
		tracer:            otel.Tracer("UserService"),
		cacheTTL:          cacheTTL,
		hashPassword:      bcrypt.GenerateFromPassword,
	}
}

// List returns a page of active users with their country. An empty page is
// reported as not found, matching the directory's historical contract.
func (s *UserService) List(ctx context.Context, request *dto.PaginationRequest) ([]*dto.UserResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "UserService.List")
	defer span.End()

	logger := s.log.WithContext(spanCtx)

	users, err := s.userRepository.ListActive(spanCtx, request.Limit, request.Offset)
	if err != nil {
		logger.WithError(err).Error("Failed to list users")
		return nil, errcode.ErrInternalServerError
	}

	if len(users) == 0 {
		return nil, errcode.ErrUserNotFound
	}

	return converter.UsersToResponse(users), nil
}

// FindByTerm classifies the term and runs the matching lookup, with a
// read-through cache in front of the database path.
func (s *UserService) FindByTerm(ctx context.Context, term string) (string, error) {
	spanCtx, span := s.tracer.Start(ctx, "UserService.FindByTerm")
	defer span.End()

	logger := s.log.WithContext(spanCtx)
	cacheKey := cacheKeyForTerm(term)

	if cached, found := s.redisService.Get(spanCtx, cacheKey); found {
		return cached, nil
	}

	strategy := searchterm.Classify(term)
	if strategy == searchterm.StrategyNone {
		logger.WithField("term", term).Warn("Search term is unresolvable")
		return "", errcode.ErrUserNotFound
	}

	user := new(model.User)
	if err := s.userRepository.FindActiveByTerm(spanCtx, user, strategy, term); err != nil {
		return "", s.lookupError(logger, term, err)
	}

	payload, err := s.redisService.Set(spanCtx, cacheKey, dto.WebResponse[*dto.UserResponse]{
		Data: converter.UserToResponse(user),
	}, s.cacheTTL)
	if err != nil {
		logger.WithError(err).Warn("Failed to cache user response")
	}

	return payload, nil
}

// FindByTermExpanded resolves the term to a user with full authorization
// context: role inner-joined, role permissions and country loaded.
func (s *UserService) FindByTermExpanded(ctx context.Context, term string) (*dto.UserResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "UserService.FindByTermExpanded")
	defer span.End()

	logger := s.log.WithContext(spanCtx)

	strategy := searchterm.Classify(term)
	if strategy == searchterm.StrategyNone {
		logger.WithField("term", term).Warn("Search term is unresolvable")
		return nil, errcode.ErrUserNotFound
	}

	user := new(model.User)
	if err := s.userRepository.FindExpandedByTerm(spanCtx, user, strategy, term); err != nil {
		return nil, s.lookupError(logger, term, err)
	}

	return converter.UserToResponse(user), nil
}

// Update applies a partial patch. A country name in the patch is resolved
// and persisted as a separate first write: an unmatched name silently clears
// the reference and must never block the remaining attributes. The two
// writes are deliberately not one transaction, for compatibility with the
// directory's historical behavior.
func (s *UserService) Update(ctx context.Context, uuid string, request *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "UserService.Update")
	defer span.End()

	logger := s.log.WithContext(spanCtx)

	user := new(model.User)
	if err := s.userRepository.FindByUUID(spanCtx, user, uuid); err != nil {
		logger.WithError(err).Warn("Failed to find user to update")
		return nil, errcode.ErrUserNotFound
	}

	staleKeys := []string{cacheKeyForTerm(user.UUID), cacheKeyForTerm(user.Email), cacheKeyForTerm(user.Name)}

	if request.OriginCountry != "" {
		country := new(model.Country)
		if err := s.countryRepository.FindByName(spanCtx, country, request.OriginCountry); err != nil {
			// No matching country: the reference is simply unset.
			logger.WithField("country", request.OriginCountry).Warn("Origin country not found, clearing reference")
			user.CountryUUID = nil
		} else {
			user.CountryUUID = &country.UUID
		}
		if err := s.userRepository.Update(spanCtx, user); err != nil {
			return nil, s.persistenceError(logger, err)
		}
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Email != "" {
		user.Email = request.Email
	}
	if request.Password != "" {
		hashed, err := s.hashPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.WithError(err).Error("Failed to hash password")
			return nil, errcode.ErrInternalServerError
		}
		user.Password = string(hashed)
	}

	if err := s.userRepository.Update(spanCtx, user); err != nil {
		return nil, s.persistenceError(logger, err)
	}

	s.redisService.Delete(spanCtx, staleKeys...)

	return converter.UserToResponse(user), nil
}

// Deactivate soft-deletes a user: the record stays, the active flag flips.
// Re-invoking on an already inactive user succeeds again.
func (s *UserService) Deactivate(ctx context.Context, uuid string) (*dto.MessageResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "UserService.Deactivate")
	defer span.End()

	logger := s.log.WithContext(spanCtx)

	user := new(model.User)
	if err := s.userRepository.FindByUUID(spanCtx, user, uuid); err != nil {
		logger.WithError(err).Warn("Failed to find user to deactivate")
		return nil, errcode.ErrUserNotFound
	}

	user.IsActive = false
	if err := s.userRepository.Update(spanCtx, user); err != nil {
		return nil, s.persistenceError(logger, err)
	}

	s.redisService.Delete(spanCtx, cacheKeyForTerm(user.UUID), cacheKeyForTerm(user.Email), cacheKeyForTerm(user.Name))

	logger.WithField("user_uuid", uuid).Info("User deactivated")
	return &dto.MessageResponse{
		Message: fmt.Sprintf("User with id: %s deleted successfully", uuid),
	}, nil
}

// lookupError collapses missing rows to not-found; anything else is a
// persistence fault.
func (s *UserService) lookupError(logger *logrus.Entry, term string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.WithField("term", term).Warn("User not found")
		return errcode.ErrUserNotFound
	}
	return s.persistenceError(logger, err)
}

// persistenceError logs the full driver error server-side and surfaces only
// the classified sentinel: unique violations as a bad request, everything
// else as a generic internal error.
func (s *UserService) persistenceError(logger *logrus.Entry, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		logger.WithError(err).WithField("detail", pgErr.Detail).Warn("Unique constraint violation")
		return errcode.ErrDuplicateValue
	}

	logger.WithError(err).Error("Unhandled persistence error")
	return errcode.ErrInternalServerError
}

func cacheKeyForTerm(term string) string {
	return "user:term:" + term
}
