package model

import (
	"time"
)

type GuestbookEntry struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Message   string    `gorm:"type:varchar(280);not null" json:"message"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

func (GuestbookEntry) TableName() string {
	return "guestbook_entries"
}
