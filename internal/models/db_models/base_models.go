package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"time"
)

type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt int64     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64     `gorm:"autoUpdateTime" json:"updated_at"`
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}

// Orderable is embedded by every record that is displayed in a position
// inside its parent (trip, itinerary day or FAQ).
//
// OrderIndex is neither unique nor contiguous. Soft-deleted rows
// (IsActive=false) keep their index and are only filtered out on read.
type Orderable struct {
	OrderIndex int  `gorm:"not null;default:0;index" json:"order_index"`
	IsActive   bool `gorm:"not null;index" json:"is_active"`
}

func (o Orderable) Index() int { return o.OrderIndex }
