package auth

import (
	"errors"

	"github.com/amirasaad/exchange/pkg/domain/user"
	authsvc "github.com/amirasaad/exchange/pkg/service/auth"
	"github.com/amirasaad/exchange/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/api/v1/authenticate", Login(authSvc))
}

// Login handles user authentication and returns a JWT token.
// @Summary Authenticate
// @Description Exchange username and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/v1/authenticate [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // Error already written by BindAndValidate
		}
		token, err := authSvc.Authenticate(c.Context(), input.Username, input.Password)
		switch {
		case err == nil:
			return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", token)
		case errors.Is(err, user.ErrUserUnauthorized), errors.Is(err, authsvc.ErrMissingSecret):
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "Username or password invalid", fiber.StatusUnauthorized)
		default:
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, fiber.StatusInternalServerError)
		}
	}
}
