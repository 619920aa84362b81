package booking

import (
	"net/mail"
	"strings"

	"flowbook/models"
)

// ValidateDetails checks the details-step form fields and returns a per-field
// error map when anything is missing or malformed. A nil return means the
// form is complete.
func ValidateDetails(state models.FlowState) *ValidationError {
	fields := make(map[string]string)
	fd := state.FormData

	if strings.TrimSpace(fd.String(models.FieldClientName)) == "" {
		fields[models.FieldClientName] = "name is required"
	}
	email := strings.TrimSpace(fd.String(models.FieldClientEmail))
	if email == "" {
		fields[models.FieldClientEmail] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		fields[models.FieldClientEmail] = "email is not valid"
	}
	if strings.TrimSpace(fd.String(models.FieldClientPhone)) == "" {
		fields[models.FieldClientPhone] = "phone is required"
	}
	if fd.Int(models.FieldQuantity) <= 0 {
		fields[models.FieldQuantity] = "quantity must be at least 1"
	}

	if biz := state.BusinessInfo; biz != nil {
		settings := biz.BookingSettings
		qty := fd.Int(models.FieldQuantity)
		if fd.Bool(models.FieldIsGroupBooking) && !settings.AllowGroupBookings {
			fields[models.FieldIsGroupBooking] = "group bookings are not available"
		}
		if settings.AllowGroupBookings && settings.MaxGroupSize > 0 && qty > settings.MaxGroupSize {
			fields[models.FieldQuantity] = "quantity exceeds the maximum group size"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
