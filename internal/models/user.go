package models

import "time"

// User represents a person registered in the store.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Age       *int      `json:"age"`
	City      *string   `json:"city"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName pins the table created by the schema initializer.
func (User) TableName() string { return "users" }

// CreateUserRequest is the body accepted by POST /api/users.
type CreateUserRequest struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,basic_email"`
	Age   *int    `json:"age" validate:"omitempty,min=0,max=120"`
	City  *string `json:"city"`
}

// UpdateUserRequest is the body accepted by PUT /api/users/:id.
// Nil name and email keep the stored value. Age and city distinguish an
// absent key, which keeps the stored value, from null, which clears it.
type UpdateUserRequest struct {
	Name  *string          `json:"name"`
	Email *string          `json:"email" validate:"omitempty,basic_email"`
	Age   Optional[int]    `json:"age" validate:"omitempty,min=0,max=120"`
	City  Optional[string] `json:"city"`
}
