package controller

import (
	"admin-api/internal/config/validation"
	"admin-api/internal/dto"
	"admin-api/internal/service"
	"admin-api/internal/utils/errcode"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type UserController struct {
	userService *service.UserService
	logger      *logrus.Logger
	validation  *validation.Validation
	tracer      trace.Tracer
}

func NewUserController(userService *service.UserService, logger *logrus.Logger, validation *validation.Validation) *UserController {
	return &UserController{userService, logger, validation, otel.Tracer("UserController")}
}

func (c *UserController) List(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "List")
	defer span.End()

	req := new(dto.PaginationRequest)
	if err := ctx.QueryParser(req); err != nil {
		c.logger.WithError(err).Warn("failed to parse pagination query")
		return errcode.ErrBadRequest
	}
	if err := c.validation.Validate(req); err != nil {
		return err
	}
	req.SetDefault()

	users, err := c.userService.List(userContext, req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.WebResponse[[]*dto.UserResponse]{
		Data: users,
		Paging: &dto.PageMetadata{
			Limit:  req.Limit,
			Offset: req.Offset,
			Count:  len(users),
		},
	})
}

func (c *UserController) Get(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "Get")
	defer span.End()

	user, err := c.userService.FindByTerm(userContext, ctx.Params("term"))
	if err != nil {
		return err
	}

	return ctx.Type("json").SendString(user)
}

func (c *UserController) GetExpanded(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "GetExpanded")
	defer span.End()

	user, err := c.userService.FindByTermExpanded(userContext, ctx.Params("term"))
	if err != nil {
		return err
	}

	return ctx.JSON(dto.WebResponse[*dto.UserResponse]{Data: user})
}

func (c *UserController) Update(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "Update")
	defer span.End()

	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return errcode.ErrInvalidUserID
	}

	req := new(dto.UpdateUserRequest)
	if err := ctx.BodyParser(req); err != nil {
		c.logger.WithError(err).Warn("failed to parse update body")
		return errcode.ErrBadRequest
	}
	if err := c.validation.Validate(req); err != nil {
		return err
	}

	user, err := c.userService.Update(userContext, id, req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.WebResponse[*dto.UserResponse]{Data: user})
}

func (c *UserController) Delete(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "Delete")
	defer span.End()

	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return errcode.ErrInvalidUserID
	}

	confirmation, err := c.userService.Deactivate(userContext, id)
	if err != nil {
		return err
	}

	return ctx.JSON(confirmation)
}
