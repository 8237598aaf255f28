package request

type FriendLinkRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	URL         string `json:"url" binding:"required,url,max=255"`
	Avatar      string `json:"avatar" binding:"omitempty,max=255"`
	Description string `json:"description" binding:"omitempty,max=500"`
	SortOrder   *int   `json:"sort_order"`
	Status      *int   `json:"status" binding:"omitempty,oneof=0 1"`
}
