package request_models

type CreateFaqRequest struct {
	Question   string `json:"question" binding:"required,max=500"`
	Answer     string `json:"answer" binding:"required"`
	OrderIndex *int   `json:"order_index"`
}

type UpdateFaqRequest struct {
	Question   *string `json:"question" binding:"omitempty,max=500"`
	Answer     *string `json:"answer"`
	OrderIndex *int    `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
}
