package models

// BookingSettings is the subset of per-business booking policy the public
// widget acts on.
type BookingSettings struct {
	RequiresApproval          bool   `json:"requires_approval" bson:"requires_approval"`
	AllowGroupBookings        bool   `json:"allow_group_bookings" bson:"allow_group_bookings"`
	MaxGroupSize              int    `json:"max_group_size" bson:"max_group_size"`
	SendConfirmationEmails    bool   `json:"send_confirmation_emails" bson:"send_confirmation_emails"`
	AllowClientCancellation   bool   `json:"allow_client_cancellation" bson:"allow_client_cancellation"`
	CancellationDeadlineHours int    `json:"cancellation_deadline_hours" bson:"cancellation_deadline_hours"`
	SendCancellationEmails    bool   `json:"send_cancellation_emails" bson:"send_cancellation_emails"`
	AllowClientReschedule     bool   `json:"allow_client_reschedule" bson:"allow_client_reschedule"`
	RescheduleDeadlineHours   int    `json:"reschedule_deadline_hours" bson:"reschedule_deadline_hours"`
	SuccessMessage            string `json:"success_message,omitempty" bson:"success_message,omitempty"`
}

// BusinessInfo is the public profile of the business hosting the widget.
type BusinessInfo struct {
	ID               string                  `json:"id" bson:"id"`
	Slug             string                  `json:"slug" bson:"slug"`
	Name             string                  `json:"name" bson:"name"`
	Timezone         string                  `json:"timezone" bson:"timezone"`
	Email            string                  `json:"email,omitempty" bson:"email,omitempty"`
	Phone            string                  `json:"phone,omitempty" bson:"phone,omitempty"`
	FlexibleSettings FlexibleBookingSettings `json:"flexible_booking_settings" bson:"flexible_booking_settings"`
	BookingSettings  BookingSettings         `json:"booking_settings" bson:"booking_settings"`
}
