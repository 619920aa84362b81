// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"flowbook/database"
	"flowbook/models"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) error
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	// CountBookedSpots sums the quantity of non-cancelled bookings for one
	// session occurrence.
	CountBookedSpots(ctx context.Context, businessID string, sessionID int64, date string) (int, error)
	MarkCancelled(ctx context.Context, reference, reason string) error
	// UpdateSchedule moves the booking onto a different slot.
	UpdateSchedule(ctx context.Context, reference string, slot models.TimeSlot) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
