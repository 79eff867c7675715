package public

import (
	"github.com/aquatech-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// FeedbackRequest is a contact form submission.
type FeedbackRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Message string `json:"message" binding:"required"`
}

// SubmitFeedback stores a contact form message.
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid feedback input")
		return
	}
	if _, err := h.FeedbackService.Submit(req.Name, req.Email, req.Message); err != nil {
		respondError(c, response.CodeBadRequest, "invalid feedback input", err)
		return
	}
	response.SuccessWithMsg(c, "feedback received", nil)
}
