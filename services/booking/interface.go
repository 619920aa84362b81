package booking

import (
	"context"

	"go.uber.org/zap"

	bookingRepo "flowbook/database/repository/booking"
	businessRepo "flowbook/database/repository/business"
	"flowbook/models"
	"flowbook/services/availability"
	"flowbook/services/flow"
	"flowbook/services/notification"
)

// Service finalizes a booking session into a persisted booking, and lets
// clients look up, cancel or reschedule an existing booking by reference.
type Service interface {
	Submit(ctx context.Context, sessionID string) (*models.FlowState, error)
	GetByReference(ctx context.Context, reference, email string) (*models.Booking, error)
	CancelByReference(ctx context.Context, reference, email, reason string) (*models.Booking, error)
	RescheduleOptions(ctx context.Context, reference, email, from, to string) ([]models.TimeSlot, error)
	Reschedule(ctx context.Context, reference, email, date string, sessionID int64) (*models.Booking, error)
}

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	FlowSvc         flow.SessionService
	AvailabilitySvc availability.Service
	Repo            bookingRepo.BookingRepository
	BusinessRepo    businessRepo.BusinessRepository
	NotificationSvc notification.Service
	Logger          *zap.Logger
}
