package model

import "time"

// FriendLink status values.
const (
	FriendLinkHidden  = 0
	FriendLinkVisible = 1
)

// FriendLink 友链模型
type FriendLink struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null;size:100" json:"name"`
	URL         string    `gorm:"uniqueIndex;not null;size:255" json:"url"`
	Avatar      string    `gorm:"size:255" json:"avatar"`
	Description string    `gorm:"size:500" json:"description"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	Status      int       `gorm:"not null;default:1" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (FriendLink) TableName() string { return "friend_links" }
