package repositories

import (
	"context"

	"todoapi/internal/models"
)

// TodoRepository defines the interface for todo data access.
type TodoRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Todo, error)
	ListWithOwners(ctx context.Context) ([]models.TodoWithOwner, error)
}

// StatsRepository defines the aggregate queries behind the stats endpoint.
type StatsRepository interface {
	Stats(ctx context.Context) (*models.Stats, error)
}
