package models

// UserStats aggregates the users table.
type UserStats struct {
	Total      int64 `json:"total"`
	AverageAge int64 `json:"averageAge"`
	Youngest   *int  `json:"youngest"`
	Oldest     *int  `json:"oldest"`
}

// CityCount is the number of users living in one city.
type CityCount struct {
	City  string `json:"city" db:"city"`
	Count int64  `json:"count" db:"count"`
}

// TodoStats aggregates the todos table.
type TodoStats struct {
	TotalTodos int64 `json:"total_todos" gorm:"column:total_todos"`
	Completed  int64 `json:"completed" gorm:"column:completed"`
	Pending    int64 `json:"pending" gorm:"column:pending"`
}

// Stats is the payload of GET /api/stats.
type Stats struct {
	Users  UserStats   `json:"users"`
	Cities []CityCount `json:"cities"`
	Todos  TodoStats   `json:"todos"`
}
