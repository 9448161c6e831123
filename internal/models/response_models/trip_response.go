package response_models

import (
	"github.com/google/uuid"
)

type CountryResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Code     string    `json:"code"`
	IsActive bool      `json:"is_active"`
}

type TripResponse struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Slug          string           `json:"slug"`
	Summary       string           `json:"summary"`
	Description   string           `json:"description,omitempty"`
	Country       *CountryResponse `json:"country,omitempty"`
	DurationDays  int              `json:"duration_days"`
	Price         int64            `json:"price"`
	Currency      string           `json:"currency"`
	CoverImageURL string           `json:"cover_image_url,omitempty"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

type ScheduleResponse struct {
	ID             uuid.UUID `json:"id"`
	TripID         uuid.UUID `json:"trip_id"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Price          int64     `json:"price"`
	SeatsTotal     int       `json:"seats_total"`
	SeatsAvailable int       `json:"seats_available"`
	IsActive       bool      `json:"is_active"`
}
