package service

import (
	"strings"

	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/repository"
)

// AnnouncementService serves storefront notices.
type AnnouncementService struct {
	announcementRepo repository.AnnouncementRepository
}

// NewAnnouncementService creates an announcement service.
func NewAnnouncementService(announcementRepo repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

// ListActive returns active announcements, pinned first.
func (s *AnnouncementService) ListActive() ([]models.Announcement, error) {
	return s.announcementRepo.ListActive()
}

// Create stores an announcement.
func (s *AnnouncementService) Create(title, body string, pinned bool) (*models.Announcement, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	announcement := &models.Announcement{
		Title:    title,
		Body:     strings.TrimSpace(body),
		IsActive: true,
		IsPinned: pinned,
	}
	if err := s.announcementRepo.Create(announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}
