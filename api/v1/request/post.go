package request

import "time"

// PostRequest is shared by create and update. TagIDs distinguishes an
// omitted field (nil, leave tags untouched on update) from an explicit
// empty list (clear all tags).
type PostRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Slug        string     `json:"slug" binding:"omitempty,slug,max=200"`
	Summary     string     `json:"summary" binding:"omitempty,max=500"`
	Content     string     `json:"content"`
	Cover       string     `json:"cover" binding:"omitempty,max=255"`
	CategoryID  *uint64    `json:"category_id"`
	Status      *int       `json:"status" binding:"omitempty,oneof=0 1 2"`
	PublishedAt *time.Time `json:"published_at"`
	TagIDs      *[]uint64  `json:"tag_ids"`
}
