package user

import (
	"github.com/amirasaad/exchange/pkg/config"
	"github.com/amirasaad/exchange/pkg/dto"
	"github.com/amirasaad/exchange/pkg/middleware"
	exchangesvc "github.com/amirasaad/exchange/pkg/service/exchange"
	usersvc "github.com/amirasaad/exchange/pkg/service/user"
	"github.com/amirasaad/exchange/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

func Routes(
	app *fiber.App,
	userSvc *usersvc.Service,
	exchangeSvc *exchangesvc.Service,
	cfg *config.App,
) {
	users := app.Group("/api/v1/users", middleware.JwtProtected(cfg.Jwt))
	users.Get("/", ListUsers(userSvc))
	users.Get("/:id", GetUser(userSvc))
	users.Get("/:id/conversions", GetUserConversions(exchangeSvc))
	users.Post("/", CreateUser(userSvc))
	users.Put("/:id", UpdateUser(userSvc))
	users.Delete("/:id", DeleteUser(userSvc))
}

func parseID(c *fiber.Ctx) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Errorf("Invalid user ID: %v", err)
		return uuid.Nil, false, common.ProblemDetailsJSON(
			c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest,
		)
	}
	return id, true, nil
}

// ListUsers returns every user.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /api/v1/users [get]
// @Security BearerAuth
func ListUsers(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := userSvc.List(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list users", err)
		}
		if users == nil {
			users = []*dto.UserRead{}
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users found", users)
	}
}

// GetUser returns a Fiber handler for retrieving a user by ID.
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /api/v1/users/{id} [get]
// @Security BearerAuth
func GetUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		u, err := userSvc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "User not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", u)
	}
}

// GetUserConversions lists the conversion history of a user, oldest first.
// @Summary Get user conversions
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /api/v1/users/{id}/conversions [get]
// @Security BearerAuth
func GetUserConversions(exchangeSvc *exchangesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		history, err := exchangeSvc.History(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get conversions", err)
		}
		if history == nil {
			history = []*dto.ConversionRead{}
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversions found", history)
	}
}

// CreateUser creates a new user account.
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body NewUser true "User creation data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /api/v1/users [post]
// @Security BearerAuth
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewUser](c)
		if input == nil {
			return err // error response already written
		}
		u, err := userSvc.Create(c.Context(), input.Username, input.Email, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create user", err)
		}
		c.Location("/api/v1/users/" + u.ID.String())
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Created user", u)
	}
}

// UpdateUser updates user information.
// @Summary Update user
// @Tags users
// @Accept json
// @Param id path string true "User ID"
// @Param request body UpdateUserInput true "User update data"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /api/v1/users/{id} [put]
// @Security BearerAuth
func UpdateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[UpdateUserInput](c)
		if input == nil {
			return err // error response already written
		}
		if input.ID != id.String() {
			return common.ProblemDetailsJSON(c, "Invalid user ID", nil, "Body id does not match path id", fiber.StatusBadRequest)
		}
		err = userSvc.Update(c.Context(), id, &dto.UserUpdate{
			Username: input.Username,
			Email:    input.Email,
			Password: input.Password,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update user", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteUser deletes a user account.
// @Summary Delete user
// @Tags users
// @Param id path string true "User ID"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /api/v1/users/{id} [delete]
// @Security BearerAuth
func DeleteUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		if err := userSvc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete user", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
