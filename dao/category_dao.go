package dao

import (
	"blogapi/model"

	"gorm.io/gorm"
)

type CategoryDAO struct {
	db *gorm.DB
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{db: db}
}

func (dao *CategoryDAO) Create(category *model.Category) error {
	return dao.db.Create(category).Error
}

func (dao *CategoryDAO) GetByID(id uint64) (*model.Category, error) {
	var category model.Category
	if err := dao.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (dao *CategoryDAO) GetBySlug(slug string) (*model.Category, error) {
	var category model.Category
	if err := dao.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (dao *CategoryDAO) GetAll() ([]model.Category, error) {
	var categories []model.Category
	err := dao.db.Find(&categories).Error
	return categories, err
}

// ListByIDs 批量查询分类，用于文章列表的批量组装
func (dao *CategoryDAO) ListByIDs(ids []uint64) ([]model.Category, error) {
	var categories []model.Category
	err := dao.db.Where("id IN ?", ids).Find(&categories).Error
	return categories, err
}

func (dao *CategoryDAO) GetPage(offset, limit int) ([]model.Category, int64, error) {
	var total int64
	if err := dao.db.Model(&model.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var categories []model.Category
	err := dao.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&categories).Error
	return categories, total, err
}

func (dao *CategoryDAO) Update(category *model.Category) error {
	return dao.db.Save(category).Error
}

func (dao *CategoryDAO) Delete(id uint64) error {
	return dao.db.Delete(&model.Category{}, id).Error
}

func (dao *CategoryDAO) Count() (int64, error) {
	var total int64
	err := dao.db.Model(&model.Category{}).Count(&total).Error
	return total, err
}

// CountByName counts categories with the given name, optionally excluding
// one id (for update-time uniqueness checks).
func (dao *CategoryDAO) CountByName(name string, excludeID uint64) (int64, error) {
	q := dao.db.Model(&model.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}

func (dao *CategoryDAO) CountBySlug(slug string, excludeID uint64) (int64, error) {
	q := dao.db.Model(&model.Category{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}
