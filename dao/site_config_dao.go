package dao

import (
	"errors"

	"blogapi/model"

	"gorm.io/gorm"
)

type SiteConfigDAO struct {
	db *gorm.DB
}

func NewSiteConfigDAO(db *gorm.DB) *SiteConfigDAO {
	return &SiteConfigDAO{db: db}
}

func (dao *SiteConfigDAO) GetByKey(key string) (*model.SiteConfig, error) {
	var config model.SiteConfig
	if err := dao.db.Where("config_key = ?", key).First(&config).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

func (dao *SiteConfigDAO) GetAll() ([]model.SiteConfig, error) {
	var configs []model.SiteConfig
	err := dao.db.Find(&configs).Error
	return configs, err
}

// Save upserts the value for a key, creating the row on first write.
func (dao *SiteConfigDAO) Save(key, value string) (*model.SiteConfig, error) {
	var config model.SiteConfig
	err := dao.db.Where("config_key = ?", key).First(&config).Error
	switch {
	case err == nil:
		config.ConfigValue = value
		if err := dao.db.Save(&config).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		config = model.SiteConfig{ConfigKey: key, ConfigValue: value}
		if err := dao.db.Create(&config).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return &config, nil
}
