package db_models

import "github.com/google/uuid"

type Faq struct {
	BaseModel
	Orderable
	TripID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Question string    `gorm:"not null"`
	Answer   string    `gorm:"type:text"`

	Images []FaqImage `gorm:"foreignKey:FaqID"`
}
