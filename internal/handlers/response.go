package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"reflect"

	"todoapi/internal/repositories"
	"todoapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error onto the API error taxonomy. Anything that
// is not a validation, not-found or conflict error becomes a 500 carrying
// message and the underlying error text.
func respondError(c *fiber.Ctx, err error, message string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   verr.Message,
			"errors":  verr.Fields,
		})
	case errors.Is(err, repositories.ErrUserNotFound):
		return userNotFound(c)
	case errors.Is(err, repositories.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   "Email is already taken",
		})
	}

	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   message,
		"details": err.Error(),
	})
}

func userNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"error":   "User not found",
	})
}

func invalidJSON(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Invalid JSON format",
		"details": err.Error(),
	})
}

// invalidBody answers a body that could not be decoded into the request type.
// Well-formed JSON carrying a value of the wrong type is a validation failure
// on that field; anything else is malformed JSON.
func invalidBody(c *fiber.Ctx, err error) error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return invalidJSON(c, err)
	}
	field := typeErr.Field
	if field == "" {
		field = "body"
	}
	return respondError(c, &services.ValidationError{
		Message: fmt.Sprintf("Invalid type for %s", field),
		Fields:  map[string]string{field: fmt.Sprintf("must be %s, got %s", jsonKind(typeErr.Type), typeErr.Value)},
	}, "")
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}
