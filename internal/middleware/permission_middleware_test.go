package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"admin-api/internal/constant"
	"admin-api/internal/model"
	"admin-api/internal/utils/errcode"
)

func userWithPermissions(names ...string) *model.User {
	permissions := make([]model.Permission, len(names))
	for i, name := range names {
		permissions[i] = model.Permission{UUID: "perm-" + name, Name: name}
	}
	return &model.User{
		UUID:     testUserUUID,
		IsActive: true,
		Role: &model.Role{
			UUID:        "role-1",
			Name:        "tester",
			Permissions: permissions,
		},
	}
}

// authorizeApp mounts the authorization stage behind a stub that seeds the
// given user into locals, standing in for the authentication stage.
func authorizeApp(user *model.User, required ...constant.Permission) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			if code, exists := errcode.GetHTTPStatus(err); exists {
				return ctx.SendStatus(code)
			}
			return ctx.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(authKey, user)
		}
		return c.Next()
	})
	app.Get("/probe", RequirePermissions(logger, required...), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRequirePermissions(t *testing.T) {
	cases := []struct {
		name       string
		user       *model.User
		required   []constant.Permission
		wantStatus int
	}{
		{
			name:       "NoAuthenticatedUserFailsClosed",
			user:       nil,
			required:   []constant.Permission{constant.PermissionRead},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "EmptyRequiredSetAdmitsAnyAuthenticatedUser",
			user:       userWithPermissions(),
			required:   nil,
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "GrantedPermission",
			user:       userWithPermissions("read"),
			required:   []constant.Permission{constant.PermissionRead},
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "MissingPermission",
			user:       userWithPermissions("read"),
			required:   []constant.Permission{constant.PermissionDelete},
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "AnyOfTheRequiredSetSuffices",
			user:       userWithPermissions("administrator"),
			required:   []constant.Permission{constant.PermissionWrite, constant.PermissionAdministrator},
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "RoleWithoutPermissions",
			user:       userWithPermissions(),
			required:   []constant.Permission{constant.PermissionRead},
			wantStatus: fiber.StatusForbidden,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := authorizeApp(tc.user, tc.required...)

			res, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
			require.NoError(t, err)
			require.Equal(t, tc.wantStatus, res.StatusCode)
		})
	}
}

func TestRequirePermissions_UnknownPermissionPanicsAtWiring(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	require.Panics(t, func() {
		RequirePermissions(logger, constant.Permission("superuser"))
	})
}

func TestGetUser_NilWithoutAuthenticationStage(t *testing.T) {
	app := fiber.New()
	app.Get("/probe", func(c *fiber.Ctx) error {
		require.Nil(t, GetUser(c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, res.StatusCode)
}
