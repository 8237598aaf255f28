package model

import "time"

// Media 媒体文件元数据。Filepath is relative to the upload root.
type Media struct {
	ID               uint64    `gorm:"primarykey" json:"id"`
	Filename         string    `gorm:"not null;size:100" json:"filename"`
	OriginalFilename string    `gorm:"size:255" json:"original_filename"`
	Filepath         string    `gorm:"not null;size:255" json:"filepath"`
	MimeType         string    `gorm:"size:100" json:"mime_type"`
	Size             int64     `gorm:"not null" json:"size"`
	UploaderID       uint64    `gorm:"not null;index" json:"uploader_id"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Media) TableName() string { return "media" }
