package request

type CategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Slug        string  `json:"slug" binding:"omitempty,slug,max=100"`
	Description string  `json:"description" binding:"omitempty,max=500"`
	ParentID    *uint64 `json:"parent_id"`
	SortOrder   *int    `json:"sort_order"`
}
