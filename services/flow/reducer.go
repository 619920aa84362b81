package flow

import "flowbook/models"

// DefaultTimezone is the fallback until a business profile supplies one.
const DefaultTimezone = "Africa/Nairobi"

// Initial returns the state every new booking session starts from.
func Initial() models.FlowState {
	return models.FlowState{
		CurrentStep:      models.StepService,
		SelectedTimezone: DefaultTimezone,
		FormData:         models.FormData{},
		BookingMode:      models.ModeHybrid,
	}
}

// Reduce applies one action to a flow state and returns the next state.
// It is pure and total: no action fails, invalid combinations are kept out
// by the gating predicate before dispatch.
func Reduce(state models.FlowState, action Action) models.FlowState {
	switch a := action.(type) {
	case SetBusinessInfo:
		info := a.Info
		state.BusinessInfo = &info
		return state

	case SelectService:
		// A legacy fixed-session booking cannot branch: drop every flexible
		// selection made so far.
		svc := a.Service
		state.SelectedService = &svc
		state.SelectedCategory = nil
		state.SelectedSubcategory = nil
		state.SelectedStaff = nil
		state.SelectedLocation = nil
		state.SelectedDate = ""
		state.SelectedSlot = nil
		state.SelectedTimeSlot = nil
		state.BookingMode = models.ModeFixed
		state.FormData = state.FormData.Merge(models.FormData{models.FieldSessionID: svc.ID})
		return state

	case SelectServiceCategory:
		cat := a.Category
		state.SelectedService = nil
		state.SelectedCategory = &cat
		state.SelectedSubcategory = nil
		state.SelectedStaff = nil
		state.SelectedLocation = nil
		state.SelectedDate = ""
		state.SelectedSlot = nil
		state.SelectedTimeSlot = nil
		// A category with no subcategories degrades to a fixed flow.
		if cat.HasSubcategories() {
			state.BookingMode = models.ModeFlexible
		} else {
			state.BookingMode = models.ModeFixed
		}
		return state

	case SelectServiceSubcategory:
		sub := a.Subcategory
		state.SelectedSubcategory = &sub
		state.SelectedStaff = nil
		state.SelectedLocation = nil
		state.SelectedDate = ""
		state.SelectedSlot = nil
		state.SelectedTimeSlot = nil
		state.BookingMode = models.ModeFlexible
		return state

	case SelectStaff:
		// Staff and location selections are independent; neither clears the
		// other and neither moves the current step.
		staff := a.Staff
		state.SelectedStaff = &staff
		return state

	case SelectLocation:
		loc := a.Location
		state.SelectedLocation = &loc
		return state

	case SelectDate:
		// A slot must always belong to the selected date.
		state.SelectedDate = a.Date
		state.SelectedSlot = nil
		state.SelectedTimeSlot = nil
		return state

	case SelectSlot:
		slot := a.Slot
		state.SelectedSlot = &slot
		state.FormData = state.FormData.Merge(models.FormData{models.FieldSessionID: slot.SessionID})
		return state

	case SelectTimeSlot:
		slot := a.Slot
		state.SelectedDate = a.Date
		state.SelectedTimeSlot = &slot
		state.SelectedSlot = &slot
		if a.Timezone != "" {
			state.SelectedTimezone = a.Timezone
		}
		state.FormData = state.FormData.Merge(models.FormData{models.FieldSessionID: slot.SessionID})
		return state

	case SetTimezone:
		state.SelectedTimezone = a.Timezone
		return state

	case SetFlexibleSettings:
		// A selection the business does not support can never remain in state.
		state.FlexibleSettings = a.Settings
		if !a.Settings.AllowStaffSelection {
			state.SelectedStaff = nil
		}
		if !a.Settings.AllowLocationSelection {
			state.SelectedLocation = nil
		}
		return state

	case UpdateFormData:
		state.FormData = state.FormData.Merge(a.Partial)
		return state

	case SetStep:
		state.CurrentStep = a.Step
		return state

	case ResetSelections:
		info := state.BusinessInfo
		settings := state.FlexibleSettings
		tz := state.SelectedTimezone
		state = Initial()
		state.BusinessInfo = info
		state.FlexibleSettings = settings
		state.SelectedTimezone = tz
		return state

	case ResetFlow:
		return Initial()

	case SetBookingConfirmation:
		conf := a.Confirmation
		state.BookingConfirmation = &conf
		return state

	default:
		return state
	}
}
