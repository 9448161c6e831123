package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Country struct {
	BaseModel
	Name     string `gorm:"not null"`
	Code     string `gorm:"size:2;uniqueIndex;not null"` // ISO 3166-1 alpha-2
	IsActive bool   `gorm:"not null"`
}

type Trip struct {
	BaseModel
	Title         string     `gorm:"not null"`
	Slug          string     `gorm:"uniqueIndex;not null"`
	Summary       string     `gorm:"type:text"`
	Description   string     `gorm:"type:text"`
	CountryID     *uuid.UUID `gorm:"type:uuid;index"`
	DurationDays  int
	PriceMinor    int64  // 129900 = 1299.00
	Currency      string `gorm:"size:3"`
	CoverImageURL string
	IsActive      bool `gorm:"not null;index"`

	Country   *Country
	Schedules []TripSchedule
}

type TripSchedule struct {
	BaseModel
	TripID         uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate      time.Time `gorm:"not null;index"`
	EndDate        time.Time `gorm:"not null"`
	PriceMinor     int64
	SeatsTotal     int
	SeatsAvailable int
	IsActive       bool `gorm:"not null"`
}
