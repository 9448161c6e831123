package db_models

import (
	"github.com/google/uuid"
)

type ItineraryDay struct {
	BaseModel
	Orderable
	TripID         uuid.UUID `gorm:"type:uuid;not null;index"`
	DayNumber      int       `gorm:"not null"`
	DayTitle       string
	DayDescription string `gorm:"type:text"`

	Activities []Activity `gorm:"foreignKey:ItineraryDayID"`
	Images     []DayImage `gorm:"foreignKey:ItineraryDayID"`
}

type Activity struct {
	BaseModel
	Orderable
	ItineraryDayID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Free-form clock time as typed by the editor ("09:00", "9:30 AM"), empty when unset.
	ActivityTime        string `gorm:"size:32"`
	ActivityDescription string `gorm:"type:text"`
}
