package public

import (
	"github.com/aquatech-store/internal/http/response"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	CustomerName  string      `json:"customer_name" binding:"required"`
	CustomerPhone string      `json:"customer_phone" binding:"required"`
	CustomerEmail string      `json:"customer_email" binding:"required"`
	CustomerCity  string      `json:"customer_city" binding:"required"`
	InvoiceType   string      `json:"invoice_type"`
	PaymentMethod string      `json:"payment_method"`
	AddressID     string      `json:"address_id"`
	Address       models.JSON `json:"address"`
}

// PlaceOrder turns the current cart into an order.
func (h *Handler) PlaceOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid order input")
		return
	}
	order, err := h.OrderService.PlaceOrder(service.PlaceOrderInput{
		UserID:        uid,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		CustomerCity:  req.CustomerCity,
		InvoiceType:   req.InvoiceType,
		PaymentMethod: req.PaymentMethod,
		AddressID:     req.AddressID,
		Address:       req.Address,
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order placement failed")
		return
	}
	response.Success(c, order)
}

// ListOrders returns the user's orders, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListByUser(uid)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order fetch failed")
		return
	}
	response.Success(c, orders)
}

// GetOrder returns one order by its public order number.
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetByOrderNo(c.Param("order_no"), uid)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order fetch failed")
		return
	}
	response.Success(c, order)
}
