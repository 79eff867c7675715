package service

import (
	"strings"
	"time"

	"github.com/aquatech-store/internal/constants"
	"github.com/aquatech-store/internal/logger"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/queue"
	"github.com/aquatech-store/internal/repository"
)

// bookingSlots are the visit windows a technician can be booked for.
var bookingSlots = map[string]bool{
	"09:00 - 11:00": true,
	"11:00 - 13:00": true,
	"14:00 - 16:00": true,
	"16:00 - 18:00": true,
}

// CreateBookingInput is a service visit request.
type CreateBookingInput struct {
	UserID    uint
	ServiceID uint
	Date      string // YYYY-MM-DD
	TimeSlot  string
	AddressID uint
}

// BookingService schedules service visits against saved addresses.
type BookingService struct {
	bookingRepo repository.BookingRepository
	productRepo repository.ProductRepository
	addressRepo repository.AddressRepository
	queueClient *queue.Client
}

// NewBookingService creates a booking service.
func NewBookingService(bookingRepo repository.BookingRepository, productRepo repository.ProductRepository, addressRepo repository.AddressRepository, queueClient *queue.Client) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
		queueClient: queueClient,
	}
}

// Create validates and stores a booking. The address is snapshotted so
// the visit record survives later edits to the address book.
func (s *BookingService) Create(input CreateBookingInput) (*models.Booking, error) {
	if input.UserID == 0 || input.ServiceID == 0 || input.AddressID == 0 {
		return nil, ErrInvalidInput
	}
	if !bookingSlots[input.TimeSlot] {
		return nil, ErrBookingSlotInvalid
	}
	dateText := strings.TrimSpace(input.Date)
	date, err := time.Parse("2006-01-02", dateText)
	if err != nil {
		return nil, ErrBookingSlotInvalid
	}
	// Compare calendar days in server-local time. Truncating the clock
	// cuts on the UTC epoch day and misplaces the boundary in other
	// zones; the zero-padded date format compares correctly as text.
	if dateText < time.Now().Format("2006-01-02") {
		return nil, ErrBookingSlotInvalid
	}

	service, err := s.productRepo.GetByID(input.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.IsActive || service.Kind != constants.CatalogKindService {
		return nil, ErrProductNotAvailable
	}

	address, err := s.addressRepo.GetByIDAndUser(input.AddressID, input.UserID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}

	booking := &models.Booking{
		UserID:      input.UserID,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Date:        date.Format("2006-01-02"),
		TimeSlot:    input.TimeSlot,
		AddressID:   address.ID,
		AddressSnapshot: models.JSON{
			"label":   address.Label,
			"name":    address.Name,
			"phone":   address.Phone,
			"email":   address.Email,
			"city":    address.City,
			"address": address.Address,
			"pincode": address.Pincode,
		},
		Status: constants.BookingStatusScheduled,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}
	logger.Infow("booking_created", "booking_id", booking.ID, "user_id", input.UserID, "service", service.Name)

	if err := s.queueClient.EnqueueBookingNotification(queue.BookingNotificationPayload{BookingID: booking.ID}); err != nil {
		logger.Warnw("booking_notification_enqueue_failed", "booking_id", booking.ID, "error", err)
	}

	return booking, nil
}

// ListByUser returns a user's bookings, newest first.
func (s *BookingService) ListByUser(userID uint) ([]models.Booking, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.bookingRepo.ListByUser(userID)
}
