package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog entry. Purifier hardware and service plans share
// this table, discriminated by Kind.
type Product struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Slug           string         `gorm:"uniqueIndex;not null" json:"slug"`
	Kind           string         `gorm:"type:varchar(20);not null;default:'product';index" json:"kind"`
	Name           string         `gorm:"not null" json:"name"`
	Category       string         `gorm:"type:varchar(50);not null;index" json:"category"`
	Price          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Rating         float64        `gorm:"default:0" json:"rating"`
	ImageURL       string         `gorm:"type:varchar(500)" json:"image_url"`
	Description    string         `gorm:"type:text" json:"description"`
	Features       StringArray    `gorm:"type:json" json:"features"`
	SearchKeywords StringArray    `gorm:"type:json" json:"search_keywords"`
	IsActive       bool           `gorm:"default:true;index" json:"is_active"`
	SortOrder      int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
