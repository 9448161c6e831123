package request_models

import "time"

type CreateTripRequest struct {
	Title         string  `json:"title" binding:"required,max=200"`
	Slug          string  `json:"slug" binding:"required,max=200"`
	Summary       string  `json:"summary"`
	Description   string  `json:"description"`
	CountryID     *string `json:"country_id" binding:"omitempty,uuid"`
	DurationDays  int     `json:"duration_days" binding:"min=0"`
	PriceMinor    int64   `json:"price" binding:"min=0"`
	Currency      string  `json:"currency" binding:"omitempty,len=3"`
	CoverImageURL string  `json:"cover_image_url" binding:"omitempty,url"`
	IsActive      *bool   `json:"is_active"`
}

type UpdateTripRequest struct {
	Title         *string `json:"title" binding:"omitempty,max=200"`
	Slug          *string `json:"slug" binding:"omitempty,max=200"`
	Summary       *string `json:"summary"`
	Description   *string `json:"description"`
	CountryID     *string `json:"country_id" binding:"omitempty,uuid"`
	DurationDays  *int    `json:"duration_days" binding:"omitempty,min=0"`
	PriceMinor    *int64  `json:"price" binding:"omitempty,min=0"`
	Currency      *string `json:"currency" binding:"omitempty,len=3"`
	CoverImageURL *string `json:"cover_image_url" binding:"omitempty,url"`
	IsActive      *bool   `json:"is_active"`
}

type ListTripsQuery struct {
	Page      int    `form:"-"`
	PageSize  int    `form:"-"`
	CountryID string `form:"countryId" binding:"omitempty,uuid"`
	Search    string `form:"search" binding:"max=100"`
	Active    *bool  `form:"active"`
	Sort      string `form:"sort" binding:"omitempty,oneof=created_desc created_asc title_asc price_asc price_desc"`
}

type CreateScheduleRequest struct {
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required,gtefield=StartDate"`
	PriceMinor     int64     `json:"price" binding:"min=0"`
	SeatsTotal     int       `json:"seats_total" binding:"min=0"`
	SeatsAvailable *int      `json:"seats_available" binding:"omitempty,min=0"`
	IsActive       *bool     `json:"is_active"`
}

type UpdateScheduleRequest struct {
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	PriceMinor     *int64     `json:"price" binding:"omitempty,min=0"`
	SeatsTotal     *int       `json:"seats_total" binding:"omitempty,min=0"`
	SeatsAvailable *int       `json:"seats_available" binding:"omitempty,min=0"`
	IsActive       *bool      `json:"is_active"`
}

type CreateCountryRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Code     string `json:"code" binding:"required,len=2"`
	IsActive *bool  `json:"is_active"`
}

type UpdateCountryRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Code     *string `json:"code" binding:"omitempty,len=2"`
	IsActive *bool   `json:"is_active"`
}
