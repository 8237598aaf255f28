package model

import "time"

// SiteConfig 站点配置，每个逻辑配置一行。ConfigValue is an opaque JSON
// string; its shape is only enforced by the config service aggregation.
type SiteConfig struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ConfigKey   string    `gorm:"uniqueIndex;not null;size:100" json:"config_key"`
	ConfigValue string    `gorm:"type:text" json:"config_value"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (SiteConfig) TableName() string { return "site_config" }
