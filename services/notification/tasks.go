package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"flowbook/models"
)

// TypeBookingEmail is the asynq task type for booking emails.
const TypeBookingEmail = "booking:email"

// EnqueueBookingEmail serializes the payload and hands it to the task queue.
func (s *DefaultNotificationService) EnqueueBookingEmail(ctx context.Context, payload models.BookingNotificationPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingEmail, data)
	info, err := s.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue booking email: %w", err)
	}
	s.Logger.Debug("booking email enqueued",
		zap.String("taskID", info.ID),
		zap.String("reference", payload.BookingReference),
		zap.String("kind", payload.Kind))
	return nil
}

// HandleBookingEmail returns the asynq handler that renders and sends one
// booking email through the given sender.
func HandleBookingEmail(sender Sender, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingNotificationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid booking email payload", zap.Error(err))
			return err
		}

		subject, body := renderBookingEmail(p)
		if err := sender.Send(ctx, p.ClientEmail, subject, body); err != nil {
			logger.Error("failed to send booking email",
				zap.String("reference", p.BookingReference),
				zap.Error(err))
			return err
		}
		return nil
	}
}

func renderBookingEmail(p models.BookingNotificationPayload) (subject, body string) {
	switch p.Kind {
	case models.NotificationBookingReschedule:
		subject = fmt.Sprintf("Booking %s rescheduled", p.BookingReference)
		body = fmt.Sprintf("Hi %s,\n\nYour booking with %s has been moved to %s at %s.\n\nReference: %s",
			p.ClientName, p.BusinessName, p.Date, p.StartTime, p.BookingReference)
	case models.NotificationBookingCancellation:
		subject = fmt.Sprintf("Booking %s cancelled", p.BookingReference)
		body = fmt.Sprintf("Hi %s,\n\nYour booking for %s on %s at %s with %s has been cancelled.\n\nReference: %s",
			p.ClientName, p.ServiceName, p.Date, p.StartTime, p.BusinessName, p.BookingReference)
	default:
		if p.Status == models.BookingStatusPending {
			subject = fmt.Sprintf("Booking request %s received", p.BookingReference)
		} else {
			subject = fmt.Sprintf("Booking %s confirmed", p.BookingReference)
		}
		body = fmt.Sprintf("Hi %s,\n\nYour booking for %s on %s at %s with %s is %s.\n\nReference: %s",
			p.ClientName, p.ServiceName, p.Date, p.StartTime, p.BusinessName, p.Status, p.BookingReference)
	}
	return subject, body
}
