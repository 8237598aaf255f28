package dao

import (
	"blogapi/model"

	"gorm.io/gorm"
)

type TagDAO struct {
	db *gorm.DB
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{db: db}
}

func (dao *TagDAO) Create(tag *model.Tag) error {
	return dao.db.Create(tag).Error
}

func (dao *TagDAO) GetByID(id uint64) (*model.Tag, error) {
	var tag model.Tag
	if err := dao.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (dao *TagDAO) GetBySlug(slug string) (*model.Tag, error) {
	var tag model.Tag
	if err := dao.db.Where("slug = ?", slug).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (dao *TagDAO) GetAll() ([]model.Tag, error) {
	var tags []model.Tag
	err := dao.db.Find(&tags).Error
	return tags, err
}

func (dao *TagDAO) GetPage(offset, limit int) ([]model.Tag, int64, error) {
	var total int64
	if err := dao.db.Model(&model.Tag{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var tags []model.Tag
	err := dao.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tags).Error
	return tags, total, err
}

func (dao *TagDAO) Update(tag *model.Tag) error {
	return dao.db.Save(tag).Error
}

func (dao *TagDAO) Delete(id uint64) error {
	return dao.db.Delete(&model.Tag{}, id).Error
}

func (dao *TagDAO) Count() (int64, error) {
	var total int64
	err := dao.db.Model(&model.Tag{}).Count(&total).Error
	return total, err
}

func (dao *TagDAO) CountByName(name string, excludeID uint64) (int64, error) {
	q := dao.db.Model(&model.Tag{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}

func (dao *TagDAO) CountBySlug(slug string, excludeID uint64) (int64, error) {
	q := dao.db.Model(&model.Tag{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}
