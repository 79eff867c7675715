package public

import (
	"strconv"

	"github.com/aquatech-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// parseUintParam reads a numeric path parameter, writing the error
// response itself on failure.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}

// GetGuestCart returns the anonymous cart for the header token.
func (h *Handler) GetGuestCart(c *gin.Context) {
	snapshot, err := h.CartService.GuestSnapshot(c.Request.Context(), getGuestToken(c))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart fetch failed")
		return
	}
	response.Success(c, snapshot)
}

// AddGuestCartItem adds quantity to a guest line.
func (h *Handler) AddGuestCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid cart item")
		return
	}
	snapshot, err := h.CartService.GuestAddItem(c.Request.Context(), getGuestToken(c), req.ProductID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, snapshot)
}

// UpdateGuestCartItem sets an absolute guest quantity. Zero removes.
func (h *Handler) UpdateGuestCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid cart item")
		return
	}
	snapshot, err := h.CartService.GuestSetItemQuantity(c.Request.Context(), getGuestToken(c), req.ProductID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, snapshot)
}

// RemoveGuestCartItem drops one guest line.
func (h *Handler) RemoveGuestCartItem(c *gin.Context) {
	productID, ok := parseUintParam(c, "product_id")
	if !ok {
		return
	}
	snapshot, err := h.CartService.GuestRemoveItem(c.Request.Context(), getGuestToken(c), productID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, snapshot)
}

// ClearGuestCart empties the guest cart.
func (h *Handler) ClearGuestCart(c *gin.Context) {
	snapshot, err := h.CartService.GuestClear(c.Request.Context(), getGuestToken(c))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, snapshot)
}
