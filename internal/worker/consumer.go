package worker

import (
	"context"
	"encoding/json"

	"github.com/aquatech-store/internal/logger"
	"github.com/aquatech-store/internal/provider"
	"github.com/aquatech-store/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer processes queued notification tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderNotification, c.handleOrderNotification)
	mux.HandleFunc(queue.TaskBookingNotification, c.handleBookingNotification)
}

// handleOrderNotification records the order confirmation for the
// customer. Orders that disappeared before the task ran are skipped,
// not retried.
func (c *Consumer) handleOrderNotification(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_notification_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_notification_skip_invalid_payload")
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_notification_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_notification_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	logger.Infow("order_notification_sent",
		"order_no", order.OrderNo,
		"user_id", order.UserID,
		"email", order.CustomerEmail,
		"total", order.Total.String(),
	)
	return nil
}

// handleBookingNotification records the booking confirmation.
func (c *Consumer) handleBookingNotification(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.BookingNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_booking_notification_unmarshal_failed", "error", err)
		return err
	}
	if payload.BookingID == 0 {
		logger.Debugw("worker_booking_notification_skip_invalid_payload")
		return nil
	}
	booking, err := c.BookingRepo.GetByID(payload.BookingID)
	if err != nil {
		logger.Warnw("worker_booking_notification_fetch_failed", "booking_id", payload.BookingID, "error", err)
		return err
	}
	if booking == nil {
		logger.Debugw("worker_booking_notification_skip_booking_not_found", "booking_id", payload.BookingID)
		return nil
	}
	logger.Infow("booking_notification_sent",
		"booking_id", booking.ID,
		"user_id", booking.UserID,
		"service", booking.ServiceName,
		"date", booking.Date,
		"slot", booking.TimeSlot,
	)
	return nil
}
