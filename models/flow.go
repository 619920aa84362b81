package models

// BookingMode distinguishes the two wizard paths a session can take.
type BookingMode string

const (
	// ModeHybrid is the initial, undetermined mode.
	ModeHybrid BookingMode = "hybrid"
	// ModeFixed is a booking bound to one predefined session record.
	ModeFixed BookingMode = "fixed"
	// ModeFlexible is a category -> subcategory -> staff/location -> date booking.
	ModeFlexible BookingMode = "flexible"
)

// BookingStep identifies one screen of the public booking wizard.
type BookingStep string

const (
	StepService     BookingStep = "service"
	StepSubcategory BookingStep = "subcategory"
	StepDate        BookingStep = "date"
	// StepTime exists for wire compatibility with older clients that split
	// date and time into two screens; the sequencer never routes to it.
	StepTime         BookingStep = "time"
	StepLocation     BookingStep = "location"
	StepStaff        BookingStep = "staff"
	StepDetails      BookingStep = "details"
	StepConfirmation BookingStep = "confirmation"
)

func (s BookingStep) String() string { return string(s) }

// FlowState is the aggregate holding every selection a customer has made so
// far in a booking session. It is owned exclusively by the flow controller:
// readers get snapshots and change it only by dispatching actions.
type FlowState struct {
	CurrentStep BookingStep `json:"currentStep"`

	SelectedService     *Service     `json:"selectedService,omitempty"`
	SelectedCategory    *Category    `json:"selectedServiceCategory,omitempty"`
	SelectedSubcategory *Subcategory `json:"selectedServiceSubcategory,omitempty"`

	SelectedStaff    *Staff    `json:"selectedStaff,omitempty"`
	SelectedLocation *Location `json:"selectedLocation,omitempty"`

	SelectedDate     string    `json:"selectedDate,omitempty"`
	SelectedSlot     *TimeSlot `json:"selectedSlot,omitempty"`
	SelectedTimeSlot *TimeSlot `json:"selectedTimeSlot,omitempty"`

	SelectedTimezone string `json:"selectedTimezone"`

	FormData FormData `json:"formData"`

	BusinessInfo *BusinessInfo `json:"businessInfo,omitempty"`

	FlexibleSettings FlexibleBookingSettings `json:"flexibleBookingSettings"`

	BookingMode BookingMode `json:"bookingMode"`

	// Set only on successful submission; terminal.
	BookingConfirmation *BookingConfirmation `json:"bookingConfirmation,omitempty"`
}

// IsFlexibleBooking reports whether the session follows the flexible path.
// Derived from BookingMode so the two can never drift apart.
func (s FlowState) IsFlexibleBooking() bool {
	return s.BookingMode == ModeFlexible
}

// FlexibleBookingSettings are per-business capability flags gating which
// optional steps appear in fixed-mode flows.
type FlexibleBookingSettings struct {
	AllowStaffSelection    bool `json:"allow_staff_selection" bson:"allow_staff_selection"`
	AllowLocationSelection bool `json:"allow_location_selection" bson:"allow_location_selection"`
}

// PreselectionInput carries URL-supplied entity ids that seed a fresh flow,
// skipping steps already implied by the link. All ids are optional.
type PreselectionInput struct {
	SessionID  int64 `json:"sessionId,omitempty" form:"sessionId"`
	ServiceID  int64 `json:"serviceId,omitempty" form:"serviceId"`
	StaffID    int64 `json:"staffId,omitempty" form:"staffId"`
	LocationID int64 `json:"locationId,omitempty" form:"locationId"`
}

func (p PreselectionInput) Empty() bool {
	return p.SessionID == 0 && p.ServiceID == 0 && p.StaffID == 0 && p.LocationID == 0
}
