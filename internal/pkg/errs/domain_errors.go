package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Request errors
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTimezone = errors.New("invalid timezone")

	// Schedule link errors
	ErrLinkNotFound = errors.New("schedule link not found")
	ErrLinkInactive = errors.New("schedule link inactive")

	// Booking errors
	ErrSlotUnavailable    = errors.New("slot unavailable")
	ErrInvalidBooking     = errors.New("invalid booking")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidCancelToken = errors.New("invalid cancel token")

	// Busy time errors
	ErrProviderDegraded = errors.New("busy time provider degraded")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
