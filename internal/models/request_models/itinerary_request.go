package request_models

type CreateDayRequest struct {
	DayNumber      int    `json:"day_number" binding:"required,min=1"`
	DayTitle       string `json:"day_title" binding:"required,max=200"`
	DayDescription string `json:"day_description"`
	OrderIndex     *int   `json:"order_index"`
}

type UpdateDayRequest struct {
	DayNumber      *int    `json:"day_number" binding:"omitempty,min=1"`
	DayTitle       *string `json:"day_title" binding:"omitempty,max=200"`
	DayDescription *string `json:"day_description"`
	OrderIndex     *int    `json:"order_index"`
	IsActive       *bool   `json:"is_active"`
}

type CreateActivityRequest struct {
	ActivityTime        string `json:"activity_time" binding:"max=32"`
	ActivityDescription string `json:"activity_description" binding:"required"`
	OrderIndex          *int   `json:"order_index"`
}

type UpdateActivityRequest struct {
	ActivityTime        *string `json:"activity_time" binding:"omitempty,max=32"`
	ActivityDescription *string `json:"activity_description"`
	OrderIndex          *int    `json:"order_index"`
	IsActive            *bool   `json:"is_active"`
}

// UpdateImageRequest covers day, gallery and FAQ images.
type UpdateImageRequest struct {
	Caption    *string `json:"caption" binding:"omitempty,max=300"`
	OrderIndex *int    `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
}

// UploadImageForm is the multipart form accompanying an image upload.
type UploadImageForm struct {
	Caption    string `form:"caption" binding:"max=300"`
	OrderIndex *int   `form:"order_index"`
}
