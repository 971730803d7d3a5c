package route

import (
	"admin-api/internal/constant"
	"admin-api/internal/controller"

	"github.com/gofiber/fiber/v2"
)

// RouteConfig handles route registration
type RouteConfig struct {
	App *fiber.App
}

// NewRouteConfig initializes the router
func NewRouteConfig(app *fiber.App) *RouteConfig {
	return &RouteConfig{app}
}

func (r *RouteConfig) WelcomeRoutes(welcomeController *controller.WelcomeController) {
	r.App.Get("/", welcomeController.Hello)
}

// RegisterUserRoutes attaches the guard pair (authenticate, then authorize
// with the operation's required capabilities) in front of each user
// operation.
func (r *RouteConfig) RegisterUserRoutes(userController *controller.UserController, authenticate fiber.Handler, authorize func(...constant.Permission) fiber.Handler) {
	user := r.App.Group("/api/users")
	user.Use(authenticate)
	{
		user.Get("/", authorize(constant.PermissionRead), userController.List)
		user.Get("/role/:term", authorize(constant.PermissionAdministrator), userController.GetExpanded)
		user.Get("/:term", authorize(constant.PermissionRead), userController.Get)
		user.Patch("/:id", authorize(constant.PermissionWrite), userController.Update)
		user.Delete("/:id", authorize(constant.PermissionDelete), userController.Delete)
	}
}

// RegisterSeedRoutes guards the seed run behind the write capability.
func (r *RouteConfig) RegisterSeedRoutes(seedController *controller.SeedController, authenticate fiber.Handler, authorize func(...constant.Permission) fiber.Handler) {
	seed := r.App.Group("/api/seed")
	seed.Use(authenticate)
	{
		seed.Post("/", authorize(constant.PermissionWrite), seedController.Run)
	}
}
