package public

import (
	"io"

	"github.com/aquatech-store/internal/http/response"
	"github.com/aquatech-store/internal/watch"

	"github.com/gin-gonic/gin"
)

// WatchCart streams full cart snapshots over SSE. The first event is
// the current cart; every mutation afterwards produces a fresh
// snapshot. Rapid bursts coalesce, so a slow client always receives
// the latest state rather than a backlog.
func (h *Handler) WatchCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	sub, err := h.CartService.Watch(uid)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart watch failed")
		return
	}
	defer sub.Unsubscribe()

	streamSnapshots(c, sub)
}

// WatchCatalog streams catalog snapshots over SSE. Open to guests.
func (h *Handler) WatchCatalog(c *gin.Context) {
	sub := h.CatalogService.Watch()
	defer sub.Unsubscribe()

	streamSnapshots(c, sub)
}

func streamSnapshots(c *gin.Context, sub *watch.Subscription) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case snapshot, open := <-sub.C():
			if !open {
				return false
			}
			c.SSEvent("snapshot", snapshot)
			return true
		}
	})
}
