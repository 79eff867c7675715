package public

import (
	"github.com/aquatech-store/internal/http/response"
	"github.com/aquatech-store/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateBookingRequest schedules a service visit.
type CreateBookingRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"time_slot" binding:"required"`
	AddressID uint   `json:"address_id" binding:"required"`
}

// CreateBooking schedules a service visit against a saved address.
func (h *Handler) CreateBooking(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid booking input")
		return
	}
	booking, err := h.BookingService.Create(service.CreateBookingInput{
		UserID:    uid,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		AddressID: req.AddressID,
	})
	if err != nil {
		respondWithMappedError(c, err, bookingErrorRules, response.CodeInternal, "booking failed")
		return
	}
	response.Success(c, booking)
}

// ListBookings returns the user's bookings, newest first.
func (h *Handler) ListBookings(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	bookings, err := h.BookingService.ListByUser(uid)
	if err != nil {
		respondWithMappedError(c, err, bookingErrorRules, response.CodeInternal, "booking fetch failed")
		return
	}
	response.Success(c, bookings)
}
