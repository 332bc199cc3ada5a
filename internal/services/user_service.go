package services

import (
	"context"

	"todoapi/internal/models"
	"todoapi/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// UserService handles business logic related to users.
type UserService struct {
	users     repositories.UserRepository
	todos     repositories.TodoRepository
	publisher Publisher
	validate  *validator.Validate
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(users repositories.UserRepository, todos repositories.TodoRepository, publisher Publisher) *UserService {
	return &UserService{
		users:     users,
		todos:     todos,
		publisher: publisher,
		validate:  NewValidator(),
	}
}

// ListUsers returns one page of users matching q.
func (s *UserService) ListUsers(ctx context.Context, q repositories.UserListQuery) (*repositories.UserPage, error) {
	return s.users.List(ctx, q)
}

// GetUser returns a user together with their todos.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, []models.Todo, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	todos, err := s.todos.ListByUser(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return user, todos, nil
}

// CreateUser validates req and stores a new user.
func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	}
	if req.City != nil && *req.City != "" {
		user.City = req.City
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	created, err := s.users.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	publishUserEvent(s.publisher, UserCreatedEvent, created.ID, created)
	return created, nil
}

// UpdateUser merges the fields present in req into the stored user.
// Empty name or email count as absent; a present age or city, null included,
// replaces the stored one.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	if req.Name != nil && *req.Name == "" {
		req.Name = nil
	}
	if req.Email != nil && *req.Email == "" {
		req.Email = nil
	}

	updated, err := s.users.Update(ctx, id, func(user *models.User) error {
		if err := validateStruct(s.validate, req); err != nil {
			return err
		}
		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.Age.Set {
			user.Age = req.Age.Value
		}
		if req.City.Set {
			user.City = req.City.Value
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	publishUserEvent(s.publisher, UserUpdatedEvent, updated.ID, updated)
	return updated, nil
}

// DeleteUser removes a user and, through the schema, their todos.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	publishUserEvent(s.publisher, UserDeletedEvent, id, nil)
	return nil
}
