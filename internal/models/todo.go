package models

import "time"

// Todo priorities accepted by the todos table.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Todo is a task optionally owned by a user.
type Todo struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed" gorm:"default:false"`
	Priority    string    `json:"priority" gorm:"default:medium"`
	UserID      *int64    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName pins the table created by the schema initializer.
func (Todo) TableName() string { return "todos" }

// TodoWithOwner is a todo joined with the name and email of its owner.
type TodoWithOwner struct {
	Todo
	UserName  *string `json:"user_name"`
	UserEmail *string `json:"user_email"`
}
