package flow

import "flowbook/models"

// ApplicableSteps computes the ordered step list for the session's current
// mode and capability flags. The list is derived, never stored.
func ApplicableSteps(state models.FlowState) []models.BookingStep {
	if state.IsFlexibleBooking() {
		return []models.BookingStep{
			models.StepService,
			models.StepSubcategory,
			models.StepLocation,
			models.StepStaff,
			models.StepDate,
			models.StepDetails,
			models.StepConfirmation,
		}
	}

	steps := []models.BookingStep{models.StepService, models.StepDate}
	if state.FlexibleSettings.AllowLocationSelection {
		steps = append(steps, models.StepLocation)
	}
	if state.FlexibleSettings.AllowStaffSelection {
		steps = append(steps, models.StepStaff)
	}
	return append(steps, models.StepDetails, models.StepConfirmation)
}

// NextStep resolves where the wizard goes when the customer moves forward
// from the current step. Forward and backward branching are specified as two
// independent tables; neither is derived from the other.
func NextStep(state models.FlowState) models.BookingStep {
	switch state.CurrentStep {
	case models.StepService:
		if state.SelectedCategory != nil && state.IsFlexibleBooking() {
			return models.StepSubcategory
		}
		if state.SelectedService != nil || state.SelectedCategory != nil {
			return models.StepDate
		}
	case models.StepSubcategory:
		return models.StepLocation
	case models.StepLocation:
		return models.StepStaff
	case models.StepStaff:
		return models.StepDate
	case models.StepDate:
		if state.IsFlexibleBooking() {
			return models.StepDetails
		}
		if state.FlexibleSettings.AllowLocationSelection {
			return models.StepLocation
		}
		if state.FlexibleSettings.AllowStaffSelection {
			return models.StepStaff
		}
		return models.StepDetails
	}
	return nextInOrder(state)
}

// PreviousStep resolves backward navigation. Its table mirrors NextStep but
// is intentionally coded on its own; the asymmetry is observed product
// behavior.
func PreviousStep(state models.FlowState) models.BookingStep {
	flexible := state.IsFlexibleBooking()
	switch state.CurrentStep {
	case models.StepDetails:
		if flexible {
			return models.StepDate
		}
		if state.FlexibleSettings.AllowStaffSelection {
			return models.StepStaff
		}
		if state.FlexibleSettings.AllowLocationSelection {
			return models.StepLocation
		}
		return models.StepDate
	case models.StepDate:
		if flexible {
			return models.StepStaff
		}
		return models.StepService
	case models.StepStaff:
		if flexible {
			return models.StepLocation
		}
		return models.StepDate
	case models.StepLocation:
		if flexible {
			return models.StepSubcategory
		}
		return models.StepDate
	case models.StepSubcategory:
		return models.StepService
	}
	return previousInOrder(state)
}

func nextInOrder(state models.FlowState) models.BookingStep {
	steps := ApplicableSteps(state)
	for i, step := range steps {
		if step == state.CurrentStep && i < len(steps)-1 {
			return steps[i+1]
		}
	}
	return state.CurrentStep
}

func previousInOrder(state models.FlowState) models.BookingStep {
	steps := ApplicableSteps(state)
	for i, step := range steps {
		if step == state.CurrentStep && i > 0 {
			return steps[i-1]
		}
	}
	return state.CurrentStep
}
