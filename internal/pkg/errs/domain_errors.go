package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Slot errors
	ErrSlotNotFound        = errors.New("slot not found")
	ErrSlotFull            = errors.New("slot is fully booked")
	ErrSlotClosed          = errors.New("slot is closed")
	ErrSlotHasBookings     = errors.New("slot has existing bookings")
	ErrCapacityBelowBooked = errors.New("capacity below current booked count")
	ErrInvalidDuration     = errors.New("invalid slot duration")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDuplicateBooking = errors.New("email already booked for this slot")

	// Calendar errors
	ErrCalendarDisabled = errors.New("calendar integration is not configured")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
