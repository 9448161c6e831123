package db_models

import "time"

type Article struct {
	BaseModel
	Title         string `gorm:"not null"`
	Slug          string `gorm:"uniqueIndex;not null"`
	Excerpt       string `gorm:"type:text"`
	Body          string `gorm:"type:text"`
	CoverImageURL string
	IsPublished   bool `gorm:"not null;index"`
	PublishedAt   *time.Time
}
