package availability

import (
	"context"

	bookingRepo "flowbook/database/repository/booking"
	occurrenceRepo "flowbook/database/repository/occurrence"
	"flowbook/models"
)

// Service computes bookable time slots for a service over a date range.
type Service interface {
	GetSlots(ctx context.Context, businessID string, serviceID int64, from, to string) ([]models.TimeSlot, error)
	// GetSlot resolves one concrete occurrence to a slot with live capacity.
	GetSlot(ctx context.Context, businessID string, sessionID int64, date string) (*models.TimeSlot, error)
}

// DefaultAvailabilityService implements Service.
type DefaultAvailabilityService struct {
	OccurrenceRepo occurrenceRepo.OccurrenceRepository
	BookingRepo    bookingRepo.BookingRepository
}
