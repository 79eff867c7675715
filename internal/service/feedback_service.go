package service

import (
	"strings"

	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/repository"
)

// FeedbackService stores contact form submissions.
type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

// NewFeedbackService creates a feedback service.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

// Submit validates and stores a contact message.
func (s *FeedbackService) Submit(name, email, message string) (*models.Feedback, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || message == "" {
		return nil, ErrInvalidInput
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, ErrInvalidInput
	}
	feedback := &models.Feedback{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}
