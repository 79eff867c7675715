package service

import (
	"strings"

	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/repository"
)

// CreateAddressInput is a new address book entry.
type CreateAddressInput struct {
	UserID  uint
	Label   string
	Name    string
	Phone   string
	Email   string
	City    string
	Address string
	Pincode string
}

// AddressService manages a user's address book.
type AddressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService creates an address service.
func NewAddressService(addressRepo repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// Create validates and stores an address.
func (s *AddressService) Create(input CreateAddressInput) (*models.Address, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Phone) == "" ||
		strings.TrimSpace(input.City) == "" ||
		strings.TrimSpace(input.Address) == "" {
		return nil, ErrInvalidInput
	}
	label := strings.TrimSpace(input.Label)
	if label == "" {
		label = "Home"
	}

	address := &models.Address{
		UserID:  input.UserID,
		Label:   label,
		Name:    strings.TrimSpace(input.Name),
		Phone:   strings.TrimSpace(input.Phone),
		Email:   strings.TrimSpace(input.Email),
		City:    strings.TrimSpace(input.City),
		Address: strings.TrimSpace(input.Address),
		Pincode: strings.TrimSpace(input.Pincode),
	}
	if err := s.addressRepo.Create(address); err != nil {
		return nil, err
	}
	return address, nil
}

// ListByUser returns a user's addresses, newest first.
func (s *AddressService) ListByUser(userID uint) ([]models.Address, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.addressRepo.ListByUser(userID)
}

// Delete removes one of the user's addresses. Deleting an address that
// does not exist or belongs to someone else fails the same way.
func (s *AddressService) Delete(userID, addressID uint) error {
	if userID == 0 || addressID == 0 {
		return ErrInvalidInput
	}
	address, err := s.addressRepo.GetByIDAndUser(addressID, userID)
	if err != nil {
		return err
	}
	if address == nil {
		return ErrAddressNotFound
	}
	return s.addressRepo.DeleteByIDAndUser(addressID, userID)
}
