package services

import (
	"context"

	"todoapi/internal/models"
	"todoapi/internal/repositories"
)

// TodoService serves the read-only todo and stats views.
type TodoService struct {
	todos repositories.TodoRepository
	stats repositories.StatsRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(todos repositories.TodoRepository, stats repositories.StatsRepository) *TodoService {
	return &TodoService{
		todos: todos,
		stats: stats,
	}
}

// ListTodos returns all todos joined with their owners, newest first.
func (s *TodoService) ListTodos(ctx context.Context) ([]models.TodoWithOwner, error) {
	return s.todos.ListWithOwners(ctx)
}

// Stats aggregates users, cities and todos.
func (s *TodoService) Stats(ctx context.Context) (*models.Stats, error) {
	return s.stats.Stats(ctx)
}
