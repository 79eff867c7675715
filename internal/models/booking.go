package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking is a scheduled service visit (installation, maintenance,
// repair) for a user at one of their addresses.
type Booking struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	ServiceID       uint           `gorm:"not null" json:"service_id"`
	ServiceName     string         `gorm:"not null" json:"service_name"`
	Date            string         `gorm:"type:varchar(20);not null" json:"date"`
	TimeSlot        string         `gorm:"type:varchar(20);not null" json:"time_slot"`
	AddressID       uint           `gorm:"not null" json:"address_id"`
	AddressSnapshot JSON           `gorm:"type:json" json:"address_snapshot"`
	Status          string         `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Booking) TableName() string {
	return "bookings"
}
