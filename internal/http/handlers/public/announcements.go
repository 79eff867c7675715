package public

import (
	"github.com/aquatech-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListAnnouncements returns active notices, pinned first.
func (h *Handler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.AnnouncementService.ListActive()
	if err != nil {
		respondError(c, response.CodeInternal, "announcement fetch failed", err)
		return
	}
	response.Success(c, announcements)
}
