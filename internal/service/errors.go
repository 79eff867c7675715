package service

import "errors"

// Shared service errors mapped to HTTP responses by the handler layer.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserDisabled        = errors.New("user is disabled")
	ErrWeakPassword        = errors.New("password does not meet policy")
	ErrInvalidInput        = errors.New("invalid input")
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNotAvailable = errors.New("product is not available")
	ErrOrderNotFound       = errors.New("order not found")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrAddressNotFound     = errors.New("address not found")
	ErrBookingSlotInvalid  = errors.New("booking slot is invalid")
	ErrGuestTokenRequired  = errors.New("guest token required")
	ErrCartMergePartial    = errors.New("cart merge incomplete")
)
