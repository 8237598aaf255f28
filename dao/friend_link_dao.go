package dao

import (
	"blogapi/model"

	"gorm.io/gorm"
)

type FriendLinkDAO struct {
	db *gorm.DB
}

func NewFriendLinkDAO(db *gorm.DB) *FriendLinkDAO {
	return &FriendLinkDAO{db: db}
}

func (dao *FriendLinkDAO) Create(link *model.FriendLink) error {
	return dao.db.Create(link).Error
}

func (dao *FriendLinkDAO) GetByID(id uint64) (*model.FriendLink, error) {
	var link model.FriendLink
	if err := dao.db.First(&link, id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (dao *FriendLinkDAO) GetAll() ([]model.FriendLink, error) {
	var links []model.FriendLink
	err := dao.db.Order("sort_order ASC, created_at DESC").Find(&links).Error
	return links, err
}

// ListVisible 公开友链列表，仅返回启用状态
func (dao *FriendLinkDAO) ListVisible() ([]model.FriendLink, error) {
	var links []model.FriendLink
	err := dao.db.Where("status = ?", model.FriendLinkVisible).
		Order("sort_order ASC, created_at DESC").Find(&links).Error
	return links, err
}

func (dao *FriendLinkDAO) GetPage(offset, limit int) ([]model.FriendLink, int64, error) {
	var total int64
	if err := dao.db.Model(&model.FriendLink{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var links []model.FriendLink
	err := dao.db.Order("sort_order ASC, created_at DESC").
		Offset(offset).Limit(limit).Find(&links).Error
	return links, total, err
}

func (dao *FriendLinkDAO) Update(link *model.FriendLink) error {
	return dao.db.Save(link).Error
}

func (dao *FriendLinkDAO) Delete(id uint64) error {
	return dao.db.Delete(&model.FriendLink{}, id).Error
}

func (dao *FriendLinkDAO) Count() (int64, error) {
	var total int64
	err := dao.db.Model(&model.FriendLink{}).Count(&total).Error
	return total, err
}

func (dao *FriendLinkDAO) CountByURL(url string, excludeID uint64) (int64, error) {
	q := dao.db.Model(&model.FriendLink{}).Where("url = ?", url)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}
