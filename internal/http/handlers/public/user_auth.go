package public

import (
	"errors"
	"time"

	"github.com/aquatech-store/internal/http/response"
	"github.com/aquatech-store/internal/logger"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest creates an account.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
}

// LoginRequest signs a user in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest rotates the password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateProfileRequest edits profile fields.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
}

type userView struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func toUserView(user *models.User) userView {
	return userView{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		LastLoginAt: user.LastLoginAt,
	}
}

// Register creates an account.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid input")
		return
	}
	user, err := h.AuthService.Register(req.Email, req.Password, req.DisplayName)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "registration failed")
		return
	}
	response.Success(c, toUserView(user))
}

// Login verifies credentials and issues a token. When the request
// carries a guest cart token the anonymous cart is folded into the
// account cart before the response, so the client starts the session
// with the reconciled cart.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid input")
		return
	}
	user, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "login failed")
		return
	}

	data := gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"user":       toUserView(user),
	}
	if guestToken := getGuestToken(c); guestToken != "" {
		snapshot, err := h.CartService.MergeGuestCart(c.Request.Context(), user.ID, guestToken)
		switch {
		case err == nil:
			data["cart"] = snapshot
		case errors.Is(err, service.ErrCartMergePartial):
			// Login still succeeds; the guest copy is kept for retry.
			logger.Warnw("login_cart_merge_partial", "user_id", user.ID)
			data["cart"] = snapshot
			data["cart_merge_notice"] = "some guest cart items could not be merged; they remain in the guest cart"
		default:
			logger.Warnw("login_cart_merge_failed", "user_id", user.ID, "error", err)
			data["cart_merge_notice"] = "the guest cart could not be merged; it remains available for retry"
		}
	}
	response.Success(c, data)
}

// GetProfile returns the signed-in user.
func (h *Handler) GetProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.AuthService.GetUser(uid)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "profile fetch failed")
		return
	}
	response.Success(c, toUserView(user))
}

// UpdateProfile edits profile fields.
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid input")
		return
	}
	user, err := h.AuthService.UpdateProfile(uid, req.DisplayName)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "profile update failed")
		return
	}
	response.Success(c, toUserView(user))
}

// ChangePassword rotates the password and invalidates old tokens.
func (h *Handler) ChangePassword(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid input")
		return
	}
	if err := h.AuthService.ChangePassword(uid, req.OldPassword, req.NewPassword); err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "password change failed")
		return
	}
	response.SuccessWithMsg(c, "password updated", nil)
}
