// Package middleware holds fiber middleware shared by the web handlers.
package middleware

import (
	"errors"
	"strings"

	"github.com/amirasaad/exchange/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const problemContentType = "application/problem+json"

var errInvalidAudience = errors.New("token issuer or audience mismatch")

// JwtProtected validates the bearer token of the request. The parsed token is
// stored in c.Locals("user").
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	if cfg == nil || cfg.Secret == "" {
		return func(c *fiber.Ctx) error {
			return jwtError(c, errors.New("no jwt secret configured"))
		}
	}
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok || !validIssuerAndAudience(token, cfg) {
				return jwtError(c, errInvalidAudience)
			}
			return c.Next()
		},
	})
}

func validIssuerAndAudience(token *jwt.Token, cfg *config.Jwt) bool {
	if cfg.Issuer != "" {
		iss, err := token.Claims.GetIssuer()
		if err != nil || iss != cfg.Issuer {
			return false
		}
	}
	if cfg.Audience != "" {
		aud, err := token.Claims.GetAudience()
		if err != nil {
			return false
		}
		for _, a := range aud {
			if a == cfg.Audience {
				return true
			}
		}
		return false
	}
	return true
}

func jwtError(c *fiber.Ctx, err error) error {
	if strings.EqualFold(err.Error(), jwtware.ErrJWTMissingOrMalformed.Error()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"type":   "about:blank",
			"title":  "Missing or malformed JWT",
			"status": fiber.StatusBadRequest,
			"detail": err.Error(),
		}, problemContentType)
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"type":   "about:blank",
		"title":  "Invalid or expired JWT",
		"status": fiber.StatusUnauthorized,
		"detail": err.Error(),
	}, problemContentType)
}
