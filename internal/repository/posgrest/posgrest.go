package posgrest

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// Lookups of missing rows return (nil, nil).
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// GetByID retrieves a single entity by its ID.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetBy retrieves entities matching a specific field value.
// The key parameter is the where clause, and value is the value to match.
func (r *repository[T]) GetBy(ctx context.Context, key string, value interface{}) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Where(key, value).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
