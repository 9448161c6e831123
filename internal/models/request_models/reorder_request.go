package request_models

type ReorderItem struct {
	ID         string `json:"id" binding:"required,uuid"`
	OrderIndex *int   `json:"order_index" binding:"required"`
}

type ReorderRequest struct {
	EntityType string        `json:"entityType" binding:"required,oneof=day activity image gallery-image faq"`
	Items      []ReorderItem `json:"items" binding:"required,min=1,dive"`
}
