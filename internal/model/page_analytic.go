package model

import (
	"time"
)

type PageAnalytic struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Date       string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"date"` // YYYY-MM-DD，每天一行
	TotalViews int       `gorm:"not null;default:0" json:"total_views"`
	TodayViews int       `gorm:"not null;default:0" json:"today_views"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PageAnalytic) TableName() string {
	return "page_analytics"
}
