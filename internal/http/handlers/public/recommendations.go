package public

import (
	"github.com/aquatech-store/internal/http/response"
	"github.com/aquatech-store/internal/service"

	"github.com/gin-gonic/gin"
)

// GetRecommendations suggests catalog entries based on the caller's
// cart. Signed-in users get suggestions for their account cart; guests
// for the cart behind their token; everyone else the cold-start list.
func (h *Handler) GetRecommendations(c *gin.Context) {
	snapshot := h.resolveCartForRecommendation(c)
	response.Success(c, h.RecommendService.ForCart(snapshot))
}

func (h *Handler) resolveCartForRecommendation(c *gin.Context) service.CartSnapshot {
	if value, ok := c.Get("user_id"); ok {
		if uid, ok := value.(uint); ok && uid != 0 {
			if snapshot, err := h.CartService.Snapshot(uid); err == nil {
				return snapshot
			}
		}
	}
	if token := getGuestToken(c); token != "" {
		if snapshot, err := h.CartService.GuestSnapshot(c.Request.Context(), token); err == nil {
			return snapshot
		}
	}
	return service.CartSnapshot{}
}
