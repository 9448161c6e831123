package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "travelcms/internal/models/db_models"
)

type OrderRepository interface {
	// SetOrderIndex writes one record's order_index. It is a single
	// statement with no scope check; a missing id yields gorm.ErrRecordNotFound.
	SetOrderIndex(ctx context.Context, entity dbm.EntityType, id uuid.UUID, orderIndex int) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// A fresh model per call: gorm hooks write into it and updates run concurrently.
var orderModels = map[dbm.EntityType]func() interface{}{
	dbm.EntityDay:          func() interface{} { return &dbm.ItineraryDay{} },
	dbm.EntityActivity:     func() interface{} { return &dbm.Activity{} },
	dbm.EntityDayImage:     func() interface{} { return &dbm.DayImage{} },
	dbm.EntityGalleryImage: func() interface{} { return &dbm.GalleryImage{} },
	dbm.EntityFaq:          func() interface{} { return &dbm.Faq{} },
}

func (r *orderRepository) SetOrderIndex(ctx context.Context, entity dbm.EntityType, id uuid.UUID, orderIndex int) error {
	newModel, ok := orderModels[entity]
	if !ok {
		return fmt.Errorf("unknown orderable entity %q", entity)
	}

	result := r.db.WithContext(ctx).
		Model(newModel()).
		Where("id = ?", id).
		Update("order_index", orderIndex)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
