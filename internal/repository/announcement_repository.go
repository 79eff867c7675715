package repository

import (
	"github.com/aquatech-store/internal/models"

	"gorm.io/gorm"
)

// AnnouncementRepository is the announcement data access interface.
type AnnouncementRepository interface {
	ListActive() ([]models.Announcement, error)
	Create(announcement *models.Announcement) error
}

// GormAnnouncementRepository is the GORM implementation.
type GormAnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates an announcement repository.
func NewAnnouncementRepository(db *gorm.DB) *GormAnnouncementRepository {
	return &GormAnnouncementRepository{db: db}
}

// ListActive returns active announcements, pinned entries first and
// newer entries before older ones within each group.
func (r *GormAnnouncementRepository) ListActive() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.Where("is_active = ?", true).
		Order("is_pinned desc").
		Order("created_at desc").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// Create inserts an announcement.
func (r *GormAnnouncementRepository) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}
