package model

import "time"

// Post status values.
const (
	PostStatusDraft     = 0
	PostStatusPublished = 1
	PostStatusArchived  = 2
)

// Post 文章模型
type Post struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"not null;size:200" json:"title"`
	Slug        string     `gorm:"uniqueIndex;not null;size:200" json:"slug"`
	Summary     string     `gorm:"size:500" json:"summary"`
	Content     string     `gorm:"type:longtext" json:"content"`
	Cover       string     `gorm:"size:255" json:"cover"`
	AuthorID    uint64     `gorm:"not null;index" json:"author_id"`
	CategoryID  *uint64    `gorm:"index" json:"category_id"`
	Status      int        `gorm:"not null;default:0;index" json:"status"`
	ViewCount   int64      `gorm:"not null;default:0" json:"view_count"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
