package handlers

import (
	"todoapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TodoHandler serves the todo listing and the aggregate stats.
type TodoHandler struct {
	service *services.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(service *services.TodoService) *TodoHandler {
	return &TodoHandler{
		service: service,
	}
}

// RegisterRoutes registers the todo and stats routes with the Fiber app.
func (h *TodoHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/todos", h.HandleListTodos)
	router.Get("/stats", h.HandleStats)
}

// HandleListTodos lists every todo with its owner's name and email.
func (h *TodoHandler) HandleListTodos(c *fiber.Ctx) error {
	todos, err := h.service.ListTodos(c.UserContext())
	if err != nil {
		return respondError(c, err, "Failed to fetch todos")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(todos),
		"todos":   todos,
	})
}

// HandleStats returns user, city and todo aggregates.
func (h *TodoHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err, "Failed to fetch stats")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"users":   stats.Users,
		"cities":  stats.Cities,
		"todos":   stats.Todos,
	})
}
