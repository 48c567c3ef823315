package models

import "errors"

// Domain sentinels. Handlers map these onto HTTP status codes; services wrap
// anything else with context via fmt.Errorf("...: %w", err).
var (
	ErrNotFound     = errors.New("requested resource not found")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("user does not have permission to access this resource")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmptyOrder          = errors.New("order must contain at least one item")
	ErrRestaurantInactive  = errors.New("restaurant is not accepting orders")
	ErrItemUnavailable     = errors.New("menu item is currently unavailable")
	ErrItemWrongRestaurant = errors.New("menu item does not belong to this restaurant")
	ErrBelowMinOrder       = errors.New("order subtotal is below the restaurant minimum")
	ErrInvalidTransition   = errors.New("order status transition not allowed")

	ErrInsufficientPoints = errors.New("insufficient loyalty points")

	ErrMissingFields = errors.New("all required fields must be filled")
	ErrPastDate      = errors.New("reservation date is in the past")
	ErrSlotFull      = errors.New("time slot is fully booked")

	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrReviewTarget      = errors.New("review must reference exactly one order or reservation")
	ErrDuplicateReview   = errors.New("order or reservation already reviewed")
	ErrReviewNotEligible = errors.New("order or reservation is not completed")
	ErrDuplicateRating   = errors.New("restaurant already rated by this user")

	ErrPaymentsUnavailable = errors.New("payment system is not configured")
)
