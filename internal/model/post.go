package model

import (
	"time"
)

type Post struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Slug       string    `gorm:"type:varchar(255);uniqueIndex" json:"slug"`
	Excerpt    string    `gorm:"type:varchar(512)" json:"excerpt"`
	Content    string    `gorm:"not null" json:"content"`
	CoverImage string    `gorm:"type:varchar(512)" json:"cover_image"`
	Tags       []string  `gorm:"serializer:json;type:json" json:"tags"`
	Views      int       `gorm:"not null;default:0" json:"views"`
	Published  bool      `gorm:"type:tinyint(1);not null;default:0" json:"published"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Post) TableName() string {
	return "blog_posts"
}
