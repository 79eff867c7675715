package public

import (
	"errors"

	"github.com/aquatech-store/internal/http/response"
	"github.com/aquatech-store/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest adds or updates one cart line.
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// GetCart returns the signed-in user's cart snapshot.
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	snapshot, err := h.CartService.Snapshot(uid)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart fetch failed")
		return
	}
	response.Success(c, snapshot)
}

// AddCartItem adds quantity on top of the existing line.
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid cart item")
		return
	}
	snapshot, err := h.CartService.AddItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, snapshot)
}

// UpdateCartItem sets an absolute quantity. Zero removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid cart item")
		return
	}
	snapshot, err := h.CartService.SetItemQuantity(uid, req.ProductID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, snapshot)
}

// RemoveCartItem drops one line.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "product_id")
	if !ok {
		return
	}
	snapshot, err := h.CartService.RemoveItem(uid, productID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, snapshot)
}

// ClearCart empties the signed-in cart.
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	snapshot, err := h.CartService.Clear(uid)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, snapshot)
}

// MergeCart folds the guest cart identified by the X-Guest-Token header
// into the signed-in cart. Quantities add.
func (h *Handler) MergeCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	snapshot, err := h.CartService.MergeGuestCart(c.Request.Context(), uid, getGuestToken(c))
	if errors.Is(err, service.ErrCartMergePartial) {
		// Non-blocking: the merged-so-far cart is returned and the
		// guest copy stays put for a retry.
		response.SuccessWithMsg(c, "some guest cart items could not be merged; they remain in the guest cart", snapshot)
		return
	}
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart merge failed")
		return
	}
	response.Success(c, snapshot)
}
