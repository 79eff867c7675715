package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a placed storefront order with customer and address snapshots
// frozen at checkout time.
type Order struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	OrderNo string `gorm:"uniqueIndex;not null" json:"order_no"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`

	CustomerName  string `gorm:"not null" json:"customer_name"`
	CustomerPhone string `gorm:"not null" json:"customer_phone"`
	CustomerEmail string `gorm:"not null" json:"customer_email"`
	CustomerCity  string `gorm:"not null" json:"customer_city"`
	InvoiceType   string `gorm:"type:varchar(30)" json:"invoice_type"`
	PaymentMethod string `gorm:"type:varchar(30)" json:"payment_method"`

	AddressID       string `gorm:"type:varchar(40)" json:"address_id"`
	AddressSnapshot JSON   `gorm:"type:json" json:"address_snapshot"`

	Subtotal  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	GSTRate   float64        `gorm:"not null;default:0" json:"gst_rate"`
	GSTAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"gst_amount"`
	Total     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`
	Status    string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one purchased line, denormalized so the order survives
// later catalog edits.
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Name      string    `gorm:"not null" json:"name"`
	Category  string    `gorm:"type:varchar(50)" json:"category"`
	ImageURL  string    `gorm:"type:varchar(500)" json:"image_url"`
	UnitPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
