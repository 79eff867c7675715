package models

import "time"

// GuestCart holds one anonymous session's cart as a single JSON payload
// of {id, qty} lines, keyed by the guest token. Used as durable guest
// storage when Redis is disabled.
type GuestCart struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	Payload   string    `gorm:"type:text" json:"payload"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

// TableName sets the table name.
func (GuestCart) TableName() string {
	return "guest_carts"
}
