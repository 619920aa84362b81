package notification

import (
	"context"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"flowbook/models"
)

// Service enqueues booking emails for asynchronous delivery.
type Service interface {
	EnqueueBookingEmail(ctx context.Context, payload models.BookingNotificationPayload) error
}

// Sender delivers one rendered booking email. Implementations wrap whatever
// transport the deployment uses.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// DefaultNotificationService implements Service on top of an asynq client.
type DefaultNotificationService struct {
	Client *asynq.Client
	Logger *zap.Logger
}

// LogSender writes emails to the log instead of delivering them. Used in
// development and as the fallback when no transport is configured.
type LogSender struct {
	Logger *zap.Logger
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	s.Logger.Info("booking email",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}
