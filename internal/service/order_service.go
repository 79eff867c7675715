package service

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/aquatech-store/internal/constants"
	"github.com/aquatech-store/internal/logger"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/queue"
	"github.com/aquatech-store/internal/repository"

	"github.com/shopspring/decimal"
)

// PlaceOrderInput is everything checkout collects.
type PlaceOrderInput struct {
	UserID        uint
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	CustomerCity  string
	InvoiceType   string
	PaymentMethod string
	AddressID     string
	Address       models.JSON
}

// OrderService turns the current cart into an order. Pricing is frozen
// at checkout: the order items copy name, category and unit price so
// later catalog edits do not rewrite history.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartService *CartService
	queueClient *queue.Client
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cartService *CartService, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartService: cartService,
		queueClient: queueClient,
	}
}

// PlaceOrder validates checkout input, prices the cart, persists the
// order and clears the cart. The notification is queued best-effort so
// a broker outage never loses a paid order.
func (s *OrderService) PlaceOrder(input PlaceOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.CustomerPhone) == "" ||
		strings.TrimSpace(input.CustomerEmail) == "" ||
		strings.TrimSpace(input.CustomerCity) == "" {
		return nil, ErrInvalidInput
	}
	// An order needs somewhere to ship: a saved address reference or an
	// inline address snapshot.
	if strings.TrimSpace(input.AddressID) == "" && len(input.Address) == 0 {
		return nil, ErrInvalidInput
	}

	snapshot, err := s.cartService.Snapshot(input.UserID)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := snapshot.Subtotal.Decimal
	gstAmount := subtotal.Mul(decimal.NewFromFloat(constants.OrderGSTRate))
	total := subtotal.Add(gstAmount)

	order := &models.Order{
		OrderNo:         NewOrderNo(),
		UserID:          input.UserID,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(input.CustomerEmail),
		CustomerCity:    strings.TrimSpace(input.CustomerCity),
		InvoiceType:     strings.TrimSpace(input.InvoiceType),
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		AddressID:       input.AddressID,
		AddressSnapshot: input.Address,
		Subtotal:        models.NewMoneyFromDecimal(subtotal),
		GSTRate:         constants.OrderGSTRate,
		GSTAmount:       models.NewMoneyFromDecimal(gstAmount),
		Total:           models.NewMoneyFromDecimal(total),
		Status:          constants.OrderStatusPending,
	}
	for _, line := range snapshot.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Category:  line.Category,
			ImageURL:  line.ImageURL,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	logger.Infow("order_placed", "order_no", order.OrderNo, "user_id", input.UserID, "total", order.Total.String())

	if _, err := s.cartService.Clear(input.UserID); err != nil {
		logger.Warnw("order_cart_clear_failed", "order_no", order.OrderNo, "error", err)
	}

	if err := s.queueClient.EnqueueOrderNotification(queue.OrderNotificationPayload{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
	}); err != nil {
		logger.Warnw("order_notification_enqueue_failed", "order_no", order.OrderNo, "error", err)
	}

	return order, nil
}

// ListByUser returns a user's orders, newest first.
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.orderRepo.ListByUser(userID)
}

// GetByOrderNo returns one order scoped to its owner.
func (s *OrderService) GetByOrderNo(orderNo string, userID uint) (*models.Order, error) {
	if userID == 0 || strings.TrimSpace(orderNo) == "" {
		return nil, ErrInvalidInput
	}
	order, err := s.orderRepo.GetByOrderNoAndUser(strings.TrimSpace(orderNo), userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// NewOrderNo builds an order number from the trailing digits of the
// current time plus a random suffix, e.g. A1-483920-517.
func NewOrderNo() string {
	stamp := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(stamp) > 6 {
		stamp = stamp[len(stamp)-6:]
	}
	return fmt.Sprintf("A1-%s-%d", stamp, rand.Intn(900)+100)
}
