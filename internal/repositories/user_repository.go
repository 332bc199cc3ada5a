package repositories

import (
	"context"
	"errors"

	"todoapi/internal/models"
)

var (
	// ErrUserNotFound is returned when no user row matches the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when an insert or update hits the unique email constraint.
	ErrEmailTaken = errors.New("email already taken")
)

// UserPage is one page of a users listing together with the unpaginated total.
type UserPage struct {
	Users []models.User
	Total int64
}

// UserRepository defines the interface for user data access.
type UserRepository interface {
	List(ctx context.Context, q UserListQuery) (*UserPage, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// Update loads the user, lets apply mutate it and writes it back in one transaction.
	Update(ctx context.Context, id int64, apply func(user *models.User) error) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
