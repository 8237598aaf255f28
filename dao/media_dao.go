package dao

import (
	"blogapi/model"

	"gorm.io/gorm"
)

type MediaDAO struct {
	db *gorm.DB
}

func NewMediaDAO(db *gorm.DB) *MediaDAO {
	return &MediaDAO{db: db}
}

func (dao *MediaDAO) Create(media *model.Media) error {
	return dao.db.Create(media).Error
}

func (dao *MediaDAO) GetByID(id uint64) (*model.Media, error) {
	var media model.Media
	if err := dao.db.First(&media, id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (dao *MediaDAO) GetPage(offset, limit int, uploaderID *uint64) ([]model.Media, int64, error) {
	q := dao.db.Model(&model.Media{})
	if uploaderID != nil {
		q = q.Where("uploader_id = ?", *uploaderID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var media []model.Media
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&media).Error
	return media, total, err
}

func (dao *MediaDAO) ListRecent(limit int) ([]model.Media, error) {
	var media []model.Media
	err := dao.db.Order("created_at DESC").Limit(limit).Find(&media).Error
	return media, err
}

func (dao *MediaDAO) Delete(id uint64) error {
	return dao.db.Delete(&model.Media{}, id).Error
}
