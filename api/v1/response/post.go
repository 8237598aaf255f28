package response

import (
	"time"

	"blogapi/model"
)

// TagInfo is the embedded tag shape on post responses.
type TagInfo struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostResponse is a post with its category and tags folded in.
type PostResponse struct {
	ID           uint64     `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Summary      string     `json:"summary"`
	Content      string     `json:"content"`
	Cover        string     `json:"cover"`
	AuthorID     uint64     `json:"author_id"`
	CategoryID   *uint64    `json:"category_id"`
	CategoryName string     `json:"category_name,omitempty"`
	CategorySlug string     `json:"category_slug,omitempty"`
	Status       int        `json:"status"`
	ViewCount    int64      `json:"view_count"`
	Tags         []TagInfo  `json:"tags,omitempty"`
	PublishedAt  *time.Time `json:"published_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewPostResponse maps the bare post columns; relations are folded in by
// the service.
func NewPostResponse(post *model.Post) PostResponse {
	return PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Summary:     post.Summary,
		Content:     post.Content,
		Cover:       post.Cover,
		AuthorID:    post.AuthorID,
		CategoryID:  post.CategoryID,
		Status:      post.Status,
		ViewCount:   post.ViewCount,
		PublishedAt: post.PublishedAt,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}
