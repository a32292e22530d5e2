package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// CORSConfig lists the values sent in the Access-Control-Allow-* headers.
type CORSConfig struct {
	AllowOrigins string
	AllowHeaders string
	AllowMethods string
}

// DefaultCORSConfig allows any origin to call the product API.
var DefaultCORSConfig = CORSConfig{
	AllowOrigins: "*",
	AllowHeaders: "Content-Type,Authorization",
	AllowMethods: "GET,POST,PUT,DELETE",
}

// CORS sets the allow headers on every response, errors included, and
// answers preflight requests directly.
//
// fiber's cors middleware only sends Allow-Methods and Allow-Headers on
// preflight responses, so browsers reading them on plain responses would miss them.
func CORS(cfg CORSConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowOrigins)
		c.Set(fiber.HeaderAccessControlAllowHeaders, cfg.AllowHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, cfg.AllowMethods)

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
