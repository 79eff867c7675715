package public

import (
	"github.com/aquatech-store/internal/http/response"
	"github.com/aquatech-store/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateAddressRequest adds a saved address.
type CreateAddressRequest struct {
	Label   string `json:"label"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	City    string `json:"city" binding:"required"`
	Address string `json:"address" binding:"required"`
	Pincode string `json:"pincode"`
}

// CreateAddress adds an address book entry.
func (h *Handler) CreateAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid address input")
		return
	}
	address, err := h.AddressService.Create(service.CreateAddressInput{
		UserID:  uid,
		Label:   req.Label,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		City:    req.City,
		Address: req.Address,
		Pincode: req.Pincode,
	})
	if err != nil {
		respondWithMappedError(c, err, addressErrorRules, response.CodeInternal, "address create failed")
		return
	}
	response.Success(c, address)
}

// ListAddresses returns the user's address book.
func (h *Handler) ListAddresses(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	addresses, err := h.AddressService.ListByUser(uid)
	if err != nil {
		respondWithMappedError(c, err, addressErrorRules, response.CodeInternal, "address fetch failed")
		return
	}
	response.Success(c, addresses)
}

// DeleteAddress removes an address book entry.
func (h *Handler) DeleteAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	addressID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.AddressService.Delete(uid, addressID); err != nil {
		respondWithMappedError(c, err, addressErrorRules, response.CodeInternal, "address delete failed")
		return
	}
	response.SuccessWithMsg(c, "address removed", nil)
}
