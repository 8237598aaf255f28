package dao

import (
	"blogapi/model"

	"gorm.io/gorm"
)

type PostDAO struct {
	db *gorm.DB
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{db: db}
}

// PostFilter narrows paged post queries. Nil fields are not applied.
type PostFilter struct {
	Status     *int
	CategoryID *uint64
}

func (dao *PostDAO) Create(post *model.Post) error {
	return dao.db.Create(post).Error
}

func (dao *PostDAO) GetByID(id uint64) (*model.Post, error) {
	var post model.Post
	if err := dao.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (dao *PostDAO) GetBySlug(slug string) (*model.Post, error) {
	var post model.Post
	if err := dao.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (dao *PostDAO) GetPage(offset, limit int, filter PostFilter) ([]model.Post, int64, error) {
	q := dao.db.Model(&model.Post{})
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var posts []model.Post
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, total, err
}

// GetPageByIDs pages over the given post ids, published only. Used by the
// tag listing after the join-table lookup.
func (dao *PostDAO) GetPageByIDs(ids []uint64, offset, limit int) ([]model.Post, int64, error) {
	q := dao.db.Model(&model.Post{}).
		Where("id IN ?", ids).
		Where("status = ?", model.PostStatusPublished)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var posts []model.Post
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, total, err
}

func (dao *PostDAO) Update(post *model.Post) error {
	return dao.db.Save(post).Error
}

func (dao *PostDAO) Delete(id uint64) error {
	return dao.db.Delete(&model.Post{}, id).Error
}

// IncrementViewCount issues a single atomic UPDATE. This is the one
// concurrency-aware mutation in the system: never read-modify-write here.
func (dao *PostDAO) IncrementViewCount(id uint64) error {
	return dao.db.Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (dao *PostDAO) Count() (int64, error) {
	var total int64
	err := dao.db.Model(&model.Post{}).Count(&total).Error
	return total, err
}

// SumViewCount totals view counts across all posts, 0 when there are none.
func (dao *PostDAO) SumViewCount() (int64, error) {
	var total *int64
	err := dao.db.Model(&model.Post{}).Select("SUM(view_count)").Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

// ListRecent returns the newest posts, capped at limit.
func (dao *PostDAO) ListRecent(limit int) ([]model.Post, error) {
	var posts []model.Post
	err := dao.db.Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

func (dao *PostDAO) CountBySlug(slug string, excludeID uint64) (int64, error) {
	q := dao.db.Model(&model.Post{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}

// CountByCategoryID backs the category-has-posts delete guard.
func (dao *PostDAO) CountByCategoryID(categoryID uint64) (int64, error) {
	var total int64
	err := dao.db.Model(&model.Post{}).Where("category_id = ?", categoryID).Count(&total).Error
	return total, err
}
