package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey is the fiber.Ctx locals key holding the request id.
const RequestIDKey = "request_id"

// RequestID reuses an incoming X-Request-ID header or generates a new UUID,
// echoes it on the response and stores it in the context locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals(RequestIDKey, id)
		return c.Next()
	}
}
