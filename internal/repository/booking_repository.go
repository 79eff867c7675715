package repository

import (
	"errors"

	"github.com/aquatech-store/internal/models"

	"gorm.io/gorm"
)

// BookingRepository is the booking data access interface.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	ListByUser(userID uint) ([]models.Booking, error)
	ListPage(filter PageFilter) ([]models.Booking, error)
	HardDelete(ids []uint) (int64, error)
}

// GormBookingRepository is the GORM implementation.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a booking repository.
func NewBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Create inserts a booking.
func (r *GormBookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID fetches one booking. Missing rows return nil, nil.
func (r *GormBookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListByUser returns a user's bookings, most recent first.
func (r *GormBookingRepository) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListPage returns a keyset page ordered by id, for bulk maintenance.
func (r *GormBookingRepository) ListPage(filter PageFilter) ([]models.Booking, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}
	var bookings []models.Booking
	query := r.db.Order("id asc").Limit(limit)
	if filter.LastID > 0 {
		query = query.Where("id > ?", filter.LastID)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// HardDelete permanently removes bookings.
func (r *GormBookingRepository) HardDelete(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Unscoped().Where("id IN ?", ids).Delete(&models.Booking{})
	return result.RowsAffected, result.Error
}
