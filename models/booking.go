package models

import "time"

// Form field keys accumulated on the details step.
const (
	FieldClientName        = "client_name"
	FieldClientEmail       = "client_email"
	FieldClientPhone       = "client_phone"
	FieldQuantity          = "quantity"
	FieldNotes             = "notes"
	FieldSessionID         = "session_id"
	FieldIsGroupBooking    = "is_group_booking"
	FieldGroupBookingNotes = "group_booking_notes"
)

// FormData accumulates user-entered booking detail fields. Updates merge into
// the map; the whole map is never replaced wholesale.
type FormData map[string]any

// Merge returns a copy of f with every entry of partial applied on top.
func (f FormData) Merge(partial FormData) FormData {
	merged := make(FormData, len(f)+len(partial))
	for k, v := range f {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return merged
}

// String returns the string value for key, or "" when absent or non-string.
func (f FormData) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// Int returns the numeric value for key. JSON decoding yields float64 for
// numbers, so both representations are accepted.
func (f FormData) Int(key string) int {
	switch v := f[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Bool returns the boolean value for key, false when absent.
func (f FormData) Bool(key string) bool {
	b, _ := f[key].(bool)
	return b
}

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is the persisted record created when a customer submits the wizard.
type Booking struct {
	ID               string    `json:"id" bson:"id"`
	BookingReference string    `json:"booking_reference" bson:"booking_reference"`
	BusinessID       string    `json:"businessId" bson:"businessId"`
	ServiceID        int64     `json:"serviceId" bson:"serviceId"`
	SessionID        int64     `json:"sessionId" bson:"sessionId"`
	StaffID          int64     `json:"staffId,omitempty" bson:"staffId,omitempty"`
	LocationID       int64     `json:"locationId,omitempty" bson:"locationId,omitempty"`
	Date             string    `json:"date" bson:"date"`
	StartTime        string    `json:"start_time" bson:"start_time"`
	EndTime          string    `json:"end_time" bson:"end_time"`
	ClientName       string    `json:"client_name" bson:"client_name"`
	ClientEmail      string    `json:"client_email" bson:"client_email"`
	ClientPhone      string    `json:"client_phone" bson:"client_phone"`
	Quantity         int       `json:"quantity" bson:"quantity"`
	Notes            string    `json:"notes,omitempty" bson:"notes,omitempty"`
	IsGroupBooking   bool      `json:"is_group_booking" bson:"is_group_booking"`
	Status           string    `json:"status" bson:"status"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty" bson:"cancelled_at,omitempty"`
	CancelReason     string    `json:"cancellation_reason,omitempty" bson:"cancellation_reason,omitempty"`
}

// SessionDetails summarizes the booked session on a confirmation.
type SessionDetails struct {
	ServiceName string `json:"service_name"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Staff       string `json:"staff,omitempty"`
	Location    string `json:"location,omitempty"`
	Quantity    int    `json:"quantity"`
}

// BookingConfirmation is the terminal result of a successful submission.
type BookingConfirmation struct {
	Status           string         `json:"status"`
	BookingReference string         `json:"booking_reference"`
	Message          string         `json:"message"`
	SessionDetails   SessionDetails `json:"session_details"`
}
