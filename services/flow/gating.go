package flow

import "flowbook/models"

// CanProceed reports whether the current step's completion requirement is
// met. It never mutates state; a false result blocks forward navigation.
func CanProceed(state models.FlowState) bool {
	switch state.CurrentStep {
	case models.StepService:
		return state.SelectedService != nil || state.SelectedCategory != nil
	case models.StepSubcategory:
		return state.SelectedSubcategory != nil
	case models.StepLocation:
		return state.SelectedLocation != nil
	case models.StepStaff:
		return state.SelectedStaff != nil
	case models.StepDate:
		if state.SelectedDate == "" {
			return false
		}
		// Flexible bookings pick a concrete time later; fixed sessions must
		// already hold a slot.
		return state.IsFlexibleBooking() || state.SelectedTimeSlot != nil
	case models.StepDetails:
		fd := state.FormData
		return fd.String(models.FieldClientName) != "" &&
			fd.String(models.FieldClientEmail) != "" &&
			fd.String(models.FieldClientPhone) != "" &&
			fd.Int(models.FieldQuantity) > 0
	case models.StepConfirmation:
		// Terminal step.
		return false
	default:
		return false
	}
}
