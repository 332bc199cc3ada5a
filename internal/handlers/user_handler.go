package handlers

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strconv"

	"todoapi/internal/models"
	"todoapi/internal/repositories"
	"todoapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

var numericID = regexp.MustCompile(`^\d+$`)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleListUsers)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/:id", withUserID(h.HandleGetUser))
	userRoutes.Put("/:id", withUserID(h.HandleUpdateUser))
	userRoutes.Delete("/:id", withUserID(h.HandleDeleteUser))
}

// withUserID passes non-numeric ids on to the next route, which ends in the
// endpoint catalog. Numeric ids too large for int64 cannot exist.
func withUserID(next func(c *fiber.Ctx, id int64) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("id")
		if !numericID.MatchString(raw) {
			return c.Next()
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return userNotFound(c)
		}
		return next(c, id)
	}
}

// HandleListUsers lists users with optional filters, sorting and pagination.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	q := repositories.ParseUserListQuery(values)

	page, err := h.service.ListUsers(c.UserContext(), q)
	if err != nil {
		return respondError(c, err, "Failed to fetch users")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"page":       q.Page,
		"limit":      q.Limit,
		"total":      page.Total,
		"totalPages": q.TotalPages(page.Total),
		"count":      len(page.Users),
		"users":      page.Users,
	})
}

// HandleGetUser returns one user with their todos.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx, id int64) error {
	user, todos, err := h.service.GetUser(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Failed to fetch user")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
		"todos":   todos,
	})
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return invalidBody(c, err)
	}

	user, err := h.service.CreateUser(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Failed to create user")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"user":    user,
	})
}

// HandleUpdateUser merges the supplied fields into an existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx, id int64) error {
	var req models.UpdateUserRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return invalidBody(c, err)
	}

	user, err := h.service.UpdateUser(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Failed to update user")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
		"user":    user,
	})
}

// HandleDeleteUser deletes a user and their todos.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx, id int64) error {
	if err := h.service.DeleteUser(c.UserContext(), id); err != nil {
		return respondError(c, err, "Failed to delete user")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}
