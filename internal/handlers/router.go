package handlers

import (
	"errors"
	"io"
	"log"
	"time"

	"todoapi/internal/middleware"
	"todoapi/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Endpoints is the route catalog returned for unknown routes.
var Endpoints = []string{
	"GET /",
	"GET /about",
	"GET /time",
	"GET /greeting?name=Jan&lang=pl",
	"GET /counter",
	"POST /echo",
	"GET /my-endpoint",
	"GET /api/users",
	"GET /api/users/:id",
	"POST /api/users",
	"PUT /api/users/:id",
	"DELETE /api/users/:id",
	"GET /api/stats",
	"GET /api/todos",
}

// Dependencies wires the services and settings the router needs.
type Dependencies struct {
	Users    *services.UserService
	Todos    *services.TodoService
	Counter  *services.VisitCounter
	Author   string
	Location *time.Location
	// AccessLog receives one line per request; nil disables access logging.
	AccessLog io.Writer
}

// NewApp builds the Fiber app with middleware, every route and the catalog fallback.
func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "todoapi",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS())
	if deps.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${locals:request_id} ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: time.RFC3339,
			Output:     deps.AccessLog,
		}))
	}

	counter := deps.Counter
	if counter == nil {
		counter = services.NewVisitCounter()
	}
	NewBasicHandler(deps.Author, deps.Location, counter).RegisterRoutes(app)

	api := app.Group("/api")
	NewUserHandler(deps.Users).RegisterRoutes(api)
	NewTodoHandler(deps.Todos).RegisterRoutes(api)

	app.Use(handleNotFound)
	return app
}

func handleNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":              "Endpoint not found",
		"availableEndpoints": Endpoints,
	})
}

// errorHandler renders errors that escaped the handlers, panics included, as JSON.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusNotFound {
			return handleNotFound(c)
		}
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"error":   fe.Message,
		})
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "Internal server error",
		"details": err.Error(),
	})
}
