package repository

import (
	"github.com/aquatech-store/internal/models"

	"gorm.io/gorm"
)

// FeedbackRepository is the contact feedback data access interface.
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
}

// GormFeedbackRepository is the GORM implementation.
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a feedback repository.
func NewFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// Create inserts a feedback entry.
func (r *GormFeedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}
