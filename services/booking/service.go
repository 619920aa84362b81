package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"flowbook/models"
	"flowbook/services/flow"
)

// Submit finalizes the session's selections into a persisted booking and
// moves the wizard to the confirmation step. On any failure the flow state
// is left untouched so the customer can retry from the details step without
// re-entering anything.
func (s *DefaultBookingService) Submit(ctx context.Context, sessionID string) (*models.FlowState, error) {
	state, err := s.FlowSvc.GetState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	biz := state.BusinessInfo
	if biz == nil {
		return nil, ErrNoBusiness
	}
	if v := ValidateDetails(*state); v != nil {
		return nil, v
	}

	slot := state.SelectedTimeSlot
	if slot == nil {
		slot = state.SelectedSlot
	}
	if slot == nil && !state.IsFlexibleBooking() {
		return nil, ErrNoSlotSelected
	}

	quantity := state.FormData.Int(models.FieldQuantity)
	if slot != nil {
		if err := s.checkCapacity(ctx, biz.ID, *slot, quantity); err != nil {
			return nil, err
		}
	}

	booking := s.buildBooking(*state, slot, quantity)
	if err := s.Repo.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	serviceName := selectedServiceName(*state)
	if biz.BookingSettings.SendConfirmationEmails {
		payload := models.BookingNotificationPayload{
			Kind:             models.NotificationBookingConfirmation,
			BookingReference: booking.BookingReference,
			ClientName:       booking.ClientName,
			ClientEmail:      booking.ClientEmail,
			BusinessName:     biz.Name,
			ServiceName:      serviceName,
			Date:             booking.Date,
			StartTime:        booking.StartTime,
			Status:           booking.Status,
		}
		if err := s.NotificationSvc.EnqueueBookingEmail(ctx, payload); err != nil {
			// Email delivery must not fail the booking.
			s.Logger.Warn("failed to enqueue confirmation email",
				zap.String("reference", booking.BookingReference),
				zap.Error(err))
		}
	}

	confirmation := models.BookingConfirmation{
		Status:           booking.Status,
		BookingReference: booking.BookingReference,
		Message:          confirmationMessage(biz.BookingSettings, booking.Status),
		SessionDetails: models.SessionDetails{
			ServiceName: serviceName,
			Date:        booking.Date,
			StartTime:   booking.StartTime,
			EndTime:     booking.EndTime,
			Staff:       staffName(*state),
			Location:    locationName(*state),
			Quantity:    quantity,
		},
	}

	newState, err := s.FlowSvc.Dispatch(ctx, sessionID, flow.SetBookingConfirmation{Confirmation: confirmation})
	if err != nil {
		return nil, err
	}
	newState, err = s.FlowSvc.Dispatch(ctx, sessionID, flow.SetStep{Step: models.StepConfirmation})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("booking submitted",
		zap.String("reference", booking.BookingReference),
		zap.String("business", biz.Slug),
		zap.String("status", booking.Status))
	return newState, nil
}

// GetByReference looks up a booking; the caller must supply the email the
// booking was made with.
func (s *DefaultBookingService) GetByReference(ctx context.Context, reference, email string) (*models.Booking, error) {
	booking, err := s.Repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if !strings.EqualFold(booking.ClientEmail, strings.TrimSpace(email)) {
		return nil, ErrEmailMismatch
	}
	return booking, nil
}

// CancelByReference cancels a booking on the client's behalf, honoring the
// business's cancellation policy.
func (s *DefaultBookingService) CancelByReference(ctx context.Context, reference, email, reason string) (*models.Booking, error) {
	booking, err := s.GetByReference(ctx, reference, email)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	biz, err := s.businessFor(ctx, booking)
	if err != nil {
		return nil, err
	}
	settings := biz.BookingSettings
	if !settings.AllowClientCancellation {
		return nil, ErrCancellationDisabled
	}
	if pastDeadline(booking, settings.CancellationDeadlineHours) {
		return nil, ErrCancellationDeadline
	}

	if err := s.Repo.MarkCancelled(ctx, reference, reason); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	booking.Status = models.BookingStatusCancelled
	booking.CancelReason = reason

	if settings.SendCancellationEmails {
		payload := models.BookingNotificationPayload{
			Kind:             models.NotificationBookingCancellation,
			BookingReference: booking.BookingReference,
			ClientName:       booking.ClientName,
			ClientEmail:      booking.ClientEmail,
			BusinessName:     biz.Name,
			Date:             booking.Date,
			StartTime:        booking.StartTime,
			Status:           booking.Status,
		}
		if err := s.NotificationSvc.EnqueueBookingEmail(ctx, payload); err != nil {
			s.Logger.Warn("failed to enqueue cancellation email",
				zap.String("reference", booking.BookingReference),
				zap.Error(err))
		}
	}

	s.Logger.Info("booking cancelled by client",
		zap.String("reference", booking.BookingReference))
	return booking, nil
}

// RescheduleOptions returns the slots the booking could move to over the
// given date range, after the same policy checks that gate Reschedule.
func (s *DefaultBookingService) RescheduleOptions(ctx context.Context, reference, email, from, to string) ([]models.TimeSlot, error) {
	booking, biz, err := s.reschedulable(ctx, reference, email)
	if err != nil {
		return nil, err
	}

	if from == "" {
		from = time.Now().Format("2006-01-02")
	}
	if to == "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, fmt.Errorf("invalid from date %q: %w", from, err)
		}
		to = t.AddDate(0, 0, 30).Format("2006-01-02")
	}

	slots, err := s.AvailabilitySvc.GetSlots(ctx, biz.ID, booking.ServiceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load reschedule options: %w", err)
	}

	// Drop the slot the booking already occupies and anything it can't fit in.
	options := make([]models.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.SessionID == booking.SessionID && slot.Date == booking.Date {
			continue
		}
		if slot.AvailableSpots < booking.Quantity {
			continue
		}
		options = append(options, slot)
	}
	return options, nil
}

// Reschedule moves the booking onto a different slot of the same service,
// honoring the business's reschedule policy.
func (s *DefaultBookingService) Reschedule(ctx context.Context, reference, email, date string, sessionID int64) (*models.Booking, error) {
	booking, biz, err := s.reschedulable(ctx, reference, email)
	if err != nil {
		return nil, err
	}

	// Resolving the target among the booking's own service slots enforces
	// that a reschedule can never jump to another service.
	candidates, err := s.AvailabilitySvc.GetSlots(ctx, biz.ID, booking.ServiceID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load target slots: %w", err)
	}
	var target *models.TimeSlot
	for i := range candidates {
		if candidates[i].SessionID == sessionID && candidates[i].Date == date {
			target = &candidates[i]
			break
		}
	}
	if target == nil {
		return nil, ErrSlotUnavailable
	}
	if booking.Quantity > target.AvailableSpots {
		return nil, &CapacityError{Requested: booking.Quantity, Available: target.AvailableSpots}
	}

	if err := s.Repo.UpdateSchedule(ctx, reference, *target); err != nil {
		return nil, fmt.Errorf("failed to reschedule booking: %w", err)
	}
	booking.SessionID = target.SessionID
	booking.Date = target.Date
	booking.StartTime = target.StartTime
	booking.EndTime = target.EndTime

	if biz.BookingSettings.SendConfirmationEmails {
		payload := models.BookingNotificationPayload{
			Kind:             models.NotificationBookingReschedule,
			BookingReference: booking.BookingReference,
			ClientName:       booking.ClientName,
			ClientEmail:      booking.ClientEmail,
			BusinessName:     biz.Name,
			Date:             booking.Date,
			StartTime:        booking.StartTime,
			Status:           booking.Status,
		}
		if err := s.NotificationSvc.EnqueueBookingEmail(ctx, payload); err != nil {
			s.Logger.Warn("failed to enqueue reschedule email",
				zap.String("reference", booking.BookingReference),
				zap.Error(err))
		}
	}

	s.Logger.Info("booking rescheduled by client",
		zap.String("reference", booking.BookingReference),
		zap.String("date", booking.Date))
	return booking, nil
}

// reschedulable loads the booking and applies the reschedule policy gates
// shared by RescheduleOptions and Reschedule.
func (s *DefaultBookingService) reschedulable(ctx context.Context, reference, email string) (*models.Booking, *models.BusinessInfo, error) {
	booking, err := s.GetByReference(ctx, reference, email)
	if err != nil {
		return nil, nil, err
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, nil, ErrAlreadyCancelled
	}
	biz, err := s.businessFor(ctx, booking)
	if err != nil {
		return nil, nil, err
	}
	settings := biz.BookingSettings
	if !settings.AllowClientReschedule {
		return nil, nil, ErrRescheduleDisabled
	}
	if pastDeadline(booking, settings.RescheduleDeadlineHours) {
		return nil, nil, ErrRescheduleDeadline
	}
	return booking, biz, nil
}

// pastDeadline reports whether the booking's start is within `hours` of now.
// Date-only bookings carry no start time and are never deadline-blocked.
func pastDeadline(booking *models.Booking, hours int) bool {
	if hours <= 0 {
		return false
	}
	start, err := time.Parse("2006-01-02 15:04", booking.Date+" "+booking.StartTime)
	if err != nil {
		return false
	}
	return time.Now().After(start.Add(-time.Duration(hours) * time.Hour))
}

// checkCapacity validates quantity against live remaining capacity, falling
// back to the capacity recorded on the selected slot when the live lookup
// fails.
func (s *DefaultBookingService) checkCapacity(ctx context.Context, businessID string, selected models.TimeSlot, quantity int) error {
	available := selected.AvailableSpots
	if live, err := s.AvailabilitySvc.GetSlot(ctx, businessID, selected.SessionID, selected.Date); err == nil {
		available = live.AvailableSpots
	}
	if quantity > available {
		return &CapacityError{Requested: quantity, Available: available}
	}
	return nil
}

func (s *DefaultBookingService) buildBooking(state models.FlowState, slot *models.TimeSlot, quantity int) models.Booking {
	biz := state.BusinessInfo
	settings := biz.BookingSettings

	status := models.BookingStatusConfirmed
	if settings.RequiresApproval {
		status = models.BookingStatusPending
	}

	booking := models.Booking{
		ID:               uuid.New().String(),
		BookingReference: NewBookingReference(),
		BusinessID:       biz.ID,
		Date:             state.SelectedDate,
		ClientName:       state.FormData.String(models.FieldClientName),
		ClientEmail:      strings.TrimSpace(state.FormData.String(models.FieldClientEmail)),
		ClientPhone:      state.FormData.String(models.FieldClientPhone),
		Quantity:         quantity,
		Notes:            state.FormData.String(models.FieldNotes),
		IsGroupBooking:   state.FormData.Bool(models.FieldIsGroupBooking),
		Status:           status,
		CreatedAt:        time.Now(),
	}
	if svc := state.SelectedService; svc != nil {
		booking.ServiceID = svc.ID
	} else if sub := state.SelectedSubcategory; sub != nil {
		booking.ServiceID = sub.ID
	}
	if slot != nil {
		booking.SessionID = slot.SessionID
		booking.Date = slot.Date
		booking.StartTime = slot.StartTime
		booking.EndTime = slot.EndTime
	}
	if st := state.SelectedStaff; st != nil {
		booking.StaffID = st.ID
	}
	if loc := state.SelectedLocation; loc != nil {
		booking.LocationID = loc.ID
	}
	return booking
}

func (s *DefaultBookingService) businessFor(ctx context.Context, booking *models.Booking) (*models.BusinessInfo, error) {
	biz, err := s.BusinessRepo.GetByID(ctx, booking.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load business for booking: %w", err)
	}
	return biz, nil
}

func confirmationMessage(settings models.BookingSettings, status string) string {
	if settings.SuccessMessage != "" {
		return settings.SuccessMessage
	}
	if status == models.BookingStatusPending {
		return "Your booking request has been received and is awaiting approval."
	}
	return "Your booking is confirmed. See you soon!"
}

func selectedServiceName(state models.FlowState) string {
	if svc := state.SelectedService; svc != nil {
		return svc.Name
	}
	if sub := state.SelectedSubcategory; sub != nil {
		return sub.Name
	}
	if cat := state.SelectedCategory; cat != nil {
		return cat.Name
	}
	return ""
}

func staffName(state models.FlowState) string {
	if st := state.SelectedStaff; st != nil {
		return st.Name
	}
	return ""
}

func locationName(state models.FlowState) string {
	if loc := state.SelectedLocation; loc != nil {
		return loc.Name
	}
	return ""
}
