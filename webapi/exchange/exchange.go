package exchange

import (
	"github.com/amirasaad/exchange/pkg/config"
	"github.com/amirasaad/exchange/pkg/middleware"
	authsvc "github.com/amirasaad/exchange/pkg/service/auth"
	exchangesvc "github.com/amirasaad/exchange/pkg/service/exchange"
	"github.com/amirasaad/exchange/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
)

const nonFiniteAmountDetail = "amount must be a finite number"

func Routes(
	app *fiber.App,
	exchangeSvc *exchangesvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	app.Get("/api/v1/exchange", middleware.JwtProtected(cfg.Jwt), Convert(exchangeSvc, authSvc))
}

// Convert converts an amount between two currencies and records the result
// in the history of the authenticated user.
// @Summary Convert currency
// @Description Convert amount from one currency to another using the latest rates
// @Tags exchange
// @Produce json
// @Param from query string true "Origin currency code"
// @Param to query string true "Destination currency code"
// @Param amount query number false "Amount to convert, defaults to 1"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Router /api/v1/exchange [get]
// @Security BearerAuth
func Convert(
	exchangeSvc *exchangesvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := common.BindQueryAndValidate[ConvertQuery](c)
		if q == nil {
			return err // error response already written
		}
		if !q.finiteAmount() {
			return common.ProblemDetailsJSON(c, "Invalid amount", nil, nonFiniteAmountDetail, fiber.StatusBadRequest)
		}
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		current, err := authSvc.GetCurrentUser(token)
		if err != nil {
			log.Errorf("Failed to read user from token: %v", err)
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}

		conv, err := exchangeSvc.Convert(c.Context(), q.From, q.To, q.amount())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Conversion failed", err)
		}
		record, err := exchangeSvc.Record(c.Context(), conv, current.Username)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to record conversion", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversion successful", record)
	}
}
