package response_models

import (
	"github.com/google/uuid"
)

// One day of a trip itinerary, with its children already in display order.
type ItineraryDayResponse struct {
	ID             uuid.UUID          `json:"id"`
	TripID         uuid.UUID          `json:"trip_id"`
	DayNumber      int                `json:"day_number"`
	OrderIndex     int                `json:"order_index"`
	DayTitle       string             `json:"day_title"`
	DayDescription string             `json:"day_description"`
	Activities     []ActivityResponse `json:"activities"`
	Images         []ImageResponse    `json:"images"`
}

type ActivityResponse struct {
	ID                  uuid.UUID `json:"id"`
	ItineraryDayID      uuid.UUID `json:"itinerary_day_id"`
	ActivityTime        string    `json:"activity_time,omitempty"`
	ActivityDescription string    `json:"activity_description"`
	OrderIndex          int       `json:"order_index"`
	IsActive            bool      `json:"is_active"`
}

// Image shape shared by day, gallery and FAQ images.
type ImageResponse struct {
	ID         uuid.UUID `json:"id"`
	ParentID   uuid.UUID `json:"parent_id"`
	ImageURL   string    `json:"image_url"`
	Caption    string    `json:"caption,omitempty"`
	OrderIndex int       `json:"order_index"`
	IsActive   bool      `json:"is_active"`
}

type FaqResponse struct {
	ID         uuid.UUID       `json:"id"`
	TripID     uuid.UUID       `json:"trip_id"`
	Question   string          `json:"question"`
	Answer     string          `json:"answer"`
	OrderIndex int             `json:"order_index"`
	IsActive   bool            `json:"is_active"`
	Images     []ImageResponse `json:"images"`
}
