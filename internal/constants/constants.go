package constants

// Order status values.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Booking status values.
const (
	BookingStatusScheduled = "scheduled"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// User status values.
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Catalog entry kinds. Products and service plans share one table,
// mirroring the two source collections.
const (
	CatalogKindProduct = "product"
	CatalogKindService = "service"
)

// Product categories used by the recommendation rules.
const (
	CategoryPurifiers   = "Purifiers"
	CategoryFilters     = "Filters"
	CategoryAccessories = "Accessories"
	CategoryServices    = "Services"
	CategoryCommercial  = "Commercial"
)

// Queue names.
const (
	QueueDefault = "default"
)

// Async task type names.
const (
	TaskOrderNotification   = "order:notification"
	TaskBookingNotification = "booking:notification"
)

// Watch hub topics.
const (
	TopicCatalog = "catalog"
)

// GST applied to order subtotals.
const OrderGSTRate = 0.18
