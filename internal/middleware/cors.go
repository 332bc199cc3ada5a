package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// CORS sets the cross-origin and content-type headers every response carries.
// Unlike fiber's cors middleware it also sets the allow-* headers outside preflight.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE")
		c.Set(fiber.HeaderAccessControlAllowHeaders, fiber.HeaderContentType)
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Next()
	}
}
