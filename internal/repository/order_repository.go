package repository

import (
	"errors"

	"github.com/aquatech-store/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	GetByOrderNoAndUser(orderNo string, userID uint) (*models.Order, error)
	ListPage(filter PageFilter) ([]models.Order, error)
	HardDelete(ids []uint) (int64, error)
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create inserts an order with its items in one transaction.
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID fetches one order with its items. Missing rows return nil, nil.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser returns a user's orders, most recent first.
func (r *GormOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByOrderNoAndUser fetches an order by its public number scoped to
// one user. Missing rows return nil, nil.
func (r *GormOrderRepository) GetByOrderNoAndUser(orderNo string, userID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Where("order_no = ? AND user_id = ?", orderNo, userID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListPage returns a keyset page ordered by id, for bulk maintenance.
func (r *GormOrderRepository) ListPage(filter PageFilter) ([]models.Order, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}
	var orders []models.Order
	query := r.db.Order("id asc").Limit(limit)
	if filter.LastID > 0 {
		query = query.Where("id > ?", filter.LastID)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// HardDelete permanently removes orders and their items.
func (r *GormOrderRepository) HardDelete(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	if err := r.db.Unscoped().Where("order_id IN ?", ids).Delete(&models.OrderItem{}).Error; err != nil {
		return 0, err
	}
	result := r.db.Unscoped().Where("id IN ?", ids).Delete(&models.Order{})
	return result.RowsAffected, result.Error
}
