package public

import (
	"strings"

	handlershared "github.com/aquatech-store/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// GuestTokenHeader carries the anonymous cart token.
const GuestTokenHeader = "X-Guest-Token"

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "user_id")
}

func getGuestToken(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(GuestTokenHeader))
}
