package queue

import (
	"encoding/json"

	"github.com/aquatech-store/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderNotification notifies the customer after checkout.
	TaskOrderNotification = constants.TaskOrderNotification
	// TaskBookingNotification notifies the customer after booking a service.
	TaskBookingNotification = constants.TaskBookingNotification
)

// OrderNotificationPayload carries the order to notify about.
type OrderNotificationPayload struct {
	OrderID uint   `json:"order_id"`
	OrderNo string `json:"order_no"`
}

// BookingNotificationPayload carries the booking to notify about.
type BookingNotificationPayload struct {
	BookingID uint `json:"booking_id"`
}

// NewOrderNotificationTask creates an order notification task.
func NewOrderNotificationTask(payload OrderNotificationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderNotification, body), nil
}

// NewBookingNotificationTask creates a booking notification task.
func NewBookingNotificationTask(payload BookingNotificationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBookingNotification, body), nil
}
