package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Read helpers return nil with a nil error when no row matches.
func findByID[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) (*T, error) {
	var out T
	err := db.WithContext(ctx).First(&out, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// updateByID applies a column patch and reports gorm.ErrRecordNotFound when
// the id matched nothing.
func updateByID[T any](ctx context.Context, db *gorm.DB, id uuid.UUID, patch map[string]interface{}) error {
	if len(patch) == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}
	result := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func orderedActive(db *gorm.DB, includeInactive bool) *gorm.DB {
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	return db.Order("order_index ASC").Order("created_at ASC")
}
