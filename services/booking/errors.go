package booking

import "fmt"

// BookingError is a typed error for submission and manage failures.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidationError carries per-field problems from the details form so the UI
// can surface each one inline.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking details invalid: %d field error(s)", len(e.Fields))
}

// CapacityError reports a quantity exceeding the selected slot's remaining
// spots.
type CapacityError struct {
	Requested int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("requested %d spots but only %d available", e.Requested, e.Available)
}

var (
	ErrBookingNotFound = &BookingError{
		Code:    "bookingNotFound",
		Message: "no booking found for that reference",
	}
	ErrEmailMismatch = &BookingError{
		Code:    "emailMismatch",
		Message: "email does not match the booking record",
	}
	ErrCancellationDisabled = &BookingError{
		Code:    "cancellationDisabled",
		Message: "this business does not allow client cancellations",
	}
	ErrCancellationDeadline = &BookingError{
		Code:    "cancellationDeadline",
		Message: "the cancellation deadline for this booking has passed",
	}
	ErrRescheduleDisabled = &BookingError{
		Code:    "rescheduleDisabled",
		Message: "this business does not allow client reschedules",
	}
	ErrRescheduleDeadline = &BookingError{
		Code:    "rescheduleDeadline",
		Message: "the reschedule deadline for this booking has passed",
	}
	ErrSlotUnavailable = &BookingError{
		Code:    "slotUnavailable",
		Message: "the requested slot is not available for this booking's service",
	}
	ErrAlreadyCancelled = &BookingError{
		Code:    "alreadyCancelled",
		Message: "this booking is already cancelled",
	}
	ErrNoSlotSelected = &BookingError{
		Code:    "noSlotSelected",
		Message: "no time slot selected for submission",
	}
	ErrNoBusiness = &BookingError{
		Code:    "noBusiness",
		Message: "booking session has no business profile",
	}
)
