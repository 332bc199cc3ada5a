package repositories

import (
	"context"
	"errors"
	"fmt"

	"todoapi/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// List runs the count and page queries rendered from q.
func (r *GORMUserRepository) List(ctx context.Context, q UserListQuery) (*UserPage, error) {
	countSQL, countArgs, err := q.CountSQL()
	if err != nil {
		return nil, fmt.Errorf("build users count query: %w", err)
	}
	selectSQL, selectArgs, err := q.SelectSQL()
	if err != nil {
		return nil, fmt.Errorf("build users query: %w", err)
	}

	page := &UserPage{Users: []models.User{}}
	if err := r.db.WithContext(ctx).Raw(countSQL, countArgs...).Scan(&page.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := r.db.WithContext(ctx).Raw(selectSQL, selectArgs...).Scan(&page.Users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return page, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return getUser(r.db.WithContext(ctx), id)
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrEmailTaken, user.Email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update applies a read-modify-write inside a transaction so concurrent
// updates of the same row cannot interleave.
func (r *GORMUserRepository) Update(ctx context.Context, id int64, apply func(user *models.User) error) (*models.User, error) {
	var updated *models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := getUser(tx, id)
		if err != nil {
			return err
		}
		if err := apply(user); err != nil {
			return err
		}

		res := tx.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":  user.Name,
			"email": user.Email,
			"age":   user.Age,
			"city":  user.City,
		})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %s", ErrEmailTaken, user.Email)
			}
			return fmt.Errorf("failed to update user %d: %w", id, res.Error)
		}

		updated, err = getUser(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete deletes a user by ID; the schema cascades the delete to their todos.
func (r *GORMUserRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	return nil
}

func getUser(db *gorm.DB, id int64) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}
