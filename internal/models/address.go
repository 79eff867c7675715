package models

import (
	"time"

	"gorm.io/gorm"
)

// Address is a saved delivery/service address for a user.
type Address struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Label     string         `gorm:"type:varchar(30);default:'Home'" json:"label"`
	Name      string         `gorm:"not null" json:"name"`
	Phone     string         `gorm:"not null" json:"phone"`
	Email     string         `json:"email"`
	City      string         `gorm:"not null" json:"city"`
	Address   string         `gorm:"type:text;not null" json:"address"`
	Pincode   string         `gorm:"type:varchar(10)" json:"pincode"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Address) TableName() string {
	return "addresses"
}
