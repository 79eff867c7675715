package public

import "github.com/aquatech-store/internal/provider"

// Handler serves the storefront API: catalog, carts, checkout,
// bookings, profile data.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
