package middleware

import (
	"admin-api/internal/constant"
	"admin-api/internal/utils/errcode"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RequirePermissions is the authorization stage of the guard pipeline. It
// must be attached after AuthMiddleware: it reads the freshly resolved user
// from locals and fails closed when none is there. An empty required set
// admits any authenticated caller; otherwise the caller's role must grant at
// least one of the required capabilities.
func RequirePermissions(log *logrus.Logger, required ...constant.Permission) fiber.Handler {
	constant.MustBeValid(required...)

	names := make([]string, len(required))
	for i, p := range required {
		names[i] = p.String()
	}

	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			log.Error("authorization stage reached without an authenticated user")
			return errcode.ErrInvalidToken
		}

		if len(names) == 0 {
			return c.Next()
		}

		if !user.HasAnyPermission(names...) {
			log.WithFields(logrus.Fields{
				"user_uuid": user.UUID,
				"required":  names,
			}).Warn("user lacks required permission")
			return errcode.ErrForbidden
		}

		return c.Next()
	}
}
