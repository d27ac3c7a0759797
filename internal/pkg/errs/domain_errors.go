package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Lookup errors
	ErrPropertyNotFound = errors.New("property not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBookingNotFound  = errors.New("booking not found")

	// Availability errors
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrDateNotOffered   = errors.New("date not offered")
	ErrDateUnavailable  = errors.New("date unavailable")

	// Booking errors
	ErrCapacityExceeded      = errors.New("guest count exceeds property capacity")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrAlreadyCancelled      = errors.New("booking is already cancelled")
	ErrCannotCancelCompleted = errors.New("cannot cancel completed booking")
	ErrInvalidTransition     = errors.New("invalid booking status transition")

	// Review errors
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrBookingNotCompleted = errors.New("can only review completed bookings")

	// Persistence errors
	ErrCorruptStore    = errors.New("store content is corrupt")
	ErrStoreUnwritable = errors.New("store could not be written")
)
