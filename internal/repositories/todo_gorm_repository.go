package repositories

import (
	"context"
	"fmt"

	"todoapi/internal/models"

	"gorm.io/gorm"
)

const todosWithOwnersQuery = `
SELECT t.*, u.name AS user_name, u.email AS user_email
FROM todos t
LEFT JOIN users u ON t.user_id = u.id
ORDER BY t.created_at DESC, t.id DESC`

// GORMTodoRepository is a GORM implementation of TodoRepository.
type GORMTodoRepository struct {
	db *gorm.DB
}

// NewGORMTodoRepository creates a new instance of GORMTodoRepository.
func NewGORMTodoRepository(db *gorm.DB) *GORMTodoRepository {
	return &GORMTodoRepository{
		db: db,
	}
}

// ListByUser returns the todos owned by userID, newest first.
func (r *GORMTodoRepository) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	todos := []models.Todo{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get todos of user %d: %w", userID, err)
	}
	return todos, nil
}

// ListWithOwners returns every todo joined with its owner, newest first.
func (r *GORMTodoRepository) ListWithOwners(ctx context.Context) ([]models.TodoWithOwner, error) {
	todos := []models.TodoWithOwner{}
	if err := r.db.WithContext(ctx).Raw(todosWithOwnersQuery).Scan(&todos).Error; err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}
	return todos, nil
}
