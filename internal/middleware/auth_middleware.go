package middleware

import (
	"strings"

	"admin-api/internal/model"
	"admin-api/internal/repository"
	"admin-api/internal/service"
	"admin-api/internal/utils/errcode"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

const (
	bearerKeyword = "Bearer"
	bearerLen     = len(bearerKeyword)
	authKey       = "auth"
)

// AuthMiddleware is the authentication stage of the guard pipeline: it
// verifies the bearer credential and resolves it to an active user with role
// and permissions loaded fresh from the directory. The resolved user is the
// only authorization context later stages may trust.
func AuthMiddleware(jwtService *service.JwtService, userRepository *repository.UserRepository, log *logrus.Logger) fiber.Handler {
	tracer := otel.Tracer("AuthMiddleware")
	return func(c *fiber.Ctx) error {
		spanCtx, span := tracer.Start(c.UserContext(), "AuthMiddleware")
		defer span.End()

		logger := log.WithContext(spanCtx)

		// Fast path for missing header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.Warn("authorization header missing")
			return errcode.ErrAuthorizationHeader
		}

		// Check prefix first (be lenient: allow "Bearer" without trailing space)
		if !strings.HasPrefix(authHeader, bearerKeyword) {
			logger.Warn("invalid authorization header format")
			return errcode.ErrBearerHeader
		}

		// Extract token after the "Bearer" keyword and trim spaces
		accessToken := strings.TrimSpace(authHeader[bearerLen:])
		if accessToken == "" {
			logger.Warn("access token missing in header")
			return errcode.ErrAccessTokenMissing
		}

		// Validate JWT token
		claims, err := jwtService.ValidateAccessToken(spanCtx, accessToken)
		if err != nil {
			logger.WithError(err).Warn("access token is invalid or expired")
			return errcode.ErrTokenIsExpired
		}

		// Resolve the subject to a live directory entry, role included
		user := new(model.User)
		if err := userRepository.FindAuthContextByUUID(spanCtx, user, claims.UUID); err != nil {
			logger.WithError(err).Warn("token subject does not resolve to a user")
			return errcode.ErrInvalidToken
		}

		if !user.IsActive {
			logger.WithField("user_uuid", user.UUID).Warn("token subject is deactivated")
			return errcode.ErrInvalidToken
		}

		// Store the resolved user in locals
		c.Locals(authKey, user)
		return c.Next()
	}
}

// GetUser retrieves the authenticated user from fiber context. Nil when the
// authentication stage has not run.
func GetUser(ctx *fiber.Ctx) *model.User {
	user, _ := ctx.Locals(authKey).(*model.User)
	return user
}
