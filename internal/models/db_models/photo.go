package db_models

import "github.com/google/uuid"

// StoredImage is the object-store reference shared by every image table.
type StoredImage struct {
	StoragePath string `gorm:"not null"`
	ImageURL    string `gorm:"type:text;not null"`
	Caption     string
}

type DayImage struct {
	BaseModel
	Orderable
	StoredImage
	ItineraryDayID uuid.UUID `gorm:"type:uuid;not null;index"`
}

type GalleryImage struct {
	BaseModel
	Orderable
	StoredImage
	TripID uuid.UUID `gorm:"type:uuid;not null;index"`
}

type FaqImage struct {
	BaseModel
	Orderable
	StoredImage
	FaqID uuid.UUID `gorm:"type:uuid;not null;index"`
}
