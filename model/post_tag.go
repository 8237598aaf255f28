package model

// PostTag 文章-标签关联表。Tag ids are taken from the request as-is;
// rows are replaced wholesale when a post's tag list changes.
type PostTag struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	PostID uint64 `gorm:"not null;index" json:"post_id"`
	TagID  uint64 `gorm:"not null;index" json:"tag_id"`
}

func (PostTag) TableName() string { return "post_tags" }
