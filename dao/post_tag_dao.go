package dao

import (
	"blogapi/model"

	"gorm.io/gorm"
)

type PostTagDAO struct {
	db *gorm.DB
}

func NewPostTagDAO(db *gorm.DB) *PostTagDAO {
	return &PostTagDAO{db: db}
}

// TagOfPost is one row of the batch tag join: tag fields plus the owning
// post id so callers can group in memory.
type TagOfPost struct {
	PostID uint64 `json:"post_id"`
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
}

// Insert writes one join row per tag id. Tag ids are trusted as-is.
func (dao *PostTagDAO) Insert(postID uint64, tagIDs []uint64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]model.PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, model.PostTag{PostID: postID, TagID: tagID})
	}
	return dao.db.Create(&rows).Error
}

func (dao *PostTagDAO) DeleteByPostID(postID uint64) error {
	return dao.db.Where("post_id = ?", postID).Delete(&model.PostTag{}).Error
}

func (dao *PostTagDAO) ListTagIDsByPostID(postID uint64) ([]uint64, error) {
	var ids []uint64
	err := dao.db.Model(&model.PostTag{}).Where("post_id = ?", postID).
		Pluck("tag_id", &ids).Error
	return ids, err
}

func (dao *PostTagDAO) ListPostIDsByTagID(tagID uint64) ([]uint64, error) {
	var ids []uint64
	err := dao.db.Model(&model.PostTag{}).Where("tag_id = ?", tagID).
		Pluck("post_id", &ids).Error
	return ids, err
}

// ListTagsByPostIDs is the single batch join behind post list assembly:
// one query regardless of how many posts are being rendered.
func (dao *PostTagDAO) ListTagsByPostIDs(postIDs []uint64) ([]TagOfPost, error) {
	var rows []TagOfPost
	err := dao.db.Model(&model.PostTag{}).
		Select("post_tags.post_id, tags.id, tags.name, tags.slug").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("post_tags.post_id IN ?", postIDs).
		Scan(&rows).Error
	return rows, err
}
