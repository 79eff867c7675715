package models

import (
	"time"

	"gorm.io/gorm"
)

// Announcement is a storefront notice. Only active ones are served;
// pinned ones sort first.
type Announcement struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Body      string         `gorm:"type:text" json:"body"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	IsPinned  bool           `gorm:"default:false" json:"is_pinned"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Announcement) TableName() string {
	return "announcements"
}
