package repositories

import (
	"context"
	"fmt"
	"math"

	"todoapi/internal/models"

	"gorm.io/gorm"
)

const (
	userStatsQuery = `
SELECT COUNT(*) AS total_users, AVG(age) AS average_age, MIN(age) AS youngest, MAX(age) AS oldest
FROM users`

	cityCountsQuery = `
SELECT city, COUNT(*) AS count
FROM users
WHERE city IS NOT NULL
GROUP BY city
ORDER BY count DESC, city ASC`

	todoStatsQuery = `
SELECT COUNT(*) AS total_todos,
	COALESCE(SUM(CASE WHEN completed = 1 THEN 1 ELSE 0 END), 0) AS completed,
	COALESCE(SUM(CASE WHEN completed = 0 THEN 1 ELSE 0 END), 0) AS pending
FROM todos`
)

type userStatsRow struct {
	TotalUsers int64    `gorm:"column:total_users"`
	AverageAge *float64 `gorm:"column:average_age"`
	Youngest   *int     `gorm:"column:youngest"`
	Oldest     *int     `gorm:"column:oldest"`
}

// GORMStatsRepository is a GORM implementation of StatsRepository.
type GORMStatsRepository struct {
	db *gorm.DB
}

// NewGORMStatsRepository creates a new instance of GORMStatsRepository.
func NewGORMStatsRepository(db *gorm.DB) *GORMStatsRepository {
	return &GORMStatsRepository{
		db: db,
	}
}

// Stats aggregates users, cities and todos.
func (r *GORMStatsRepository) Stats(ctx context.Context) (*models.Stats, error) {
	db := r.db.WithContext(ctx)

	var users userStatsRow
	if err := db.Raw(userStatsQuery).Scan(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate users: %w", err)
	}

	cities := []models.CityCount{}
	if err := db.Raw(cityCountsQuery).Scan(&cities).Error; err != nil {
		return nil, fmt.Errorf("failed to count users per city: %w", err)
	}

	var todos models.TodoStats
	if err := db.Raw(todoStatsQuery).Scan(&todos).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate todos: %w", err)
	}

	stats := &models.Stats{
		Users: models.UserStats{
			Total:    users.TotalUsers,
			Youngest: users.Youngest,
			Oldest:   users.Oldest,
		},
		Cities: cities,
		Todos:  todos,
	}
	if users.AverageAge != nil {
		stats.Users.AverageAge = int64(math.Round(*users.AverageAge))
	}
	return stats, nil
}
