// Package webapi provides the HTTP API of the exchange service.
// It is organized into sub-packages per resource:
// - auth: token issuing
// - exchange: currency conversion
// - user: user management and conversion history
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/exchange/pkg/app"
	authweb "github.com/amirasaad/exchange/webapi/auth"
	"github.com/amirasaad/exchange/webapi/common"
	exchangeweb "github.com/amirasaad/exchange/webapi/exchange"
	userweb "github.com/amirasaad/exchange/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.ProblemDetailsJSON(c, fe.Message, nil, fe.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, fiber.StatusInternalServerError)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	fiberApp.Use(limiter.New(limiter.Config{
		Max:          a.Config.RateLimit.MaxRequests,
		Expiration:   a.Config.RateLimit.Window,
		Storage:      a.Deps.LimiterStorage,
		KeyGenerator: clientKey,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("Exchange API is running!")
		},
	)

	authweb.Routes(fiberApp, a.AuthService)
	exchangeweb.Routes(fiberApp, a.ExchangeService, a.AuthService, a.Config)
	userweb.Routes(fiberApp, a.UserService, a.ExchangeService, a.Config)
	return fiberApp
}

// clientKey identifies the caller for rate limiting. The first address of
// X-Forwarded-For wins, then X-Real-IP, then the peer address.
func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
