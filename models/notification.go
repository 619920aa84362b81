package models

// Notification kinds enqueued for the email worker.
const (
	NotificationBookingConfirmation = "confirmation"
	NotificationBookingCancellation = "cancellation"
	NotificationBookingReschedule   = "reschedule"
)

// BookingNotificationPayload is the task payload for booking emails.
type BookingNotificationPayload struct {
	Kind             string `json:"kind"`
	BookingReference string `json:"booking_reference"`
	ClientName       string `json:"client_name"`
	ClientEmail      string `json:"client_email"`
	BusinessName     string `json:"business_name"`
	ServiceName      string `json:"service_name"`
	Date             string `json:"date"`
	StartTime        string `json:"start_time"`
	Status           string `json:"status"`
}
