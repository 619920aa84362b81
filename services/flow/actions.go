package flow

import (
	"encoding/json"
	"fmt"

	"flowbook/models"
)

// Action is one user-observable event dispatched against a booking session.
// The set of actions is closed: every variant carries its own typed payload.
type Action interface {
	ActionType() string
}

type SetBusinessInfo struct {
	Info models.BusinessInfo `json:"info"`
}

type SelectService struct {
	Service models.Service `json:"service"`
}

type SelectServiceCategory struct {
	Category models.Category `json:"category"`
}

type SelectServiceSubcategory struct {
	Subcategory models.Subcategory `json:"subcategory"`
}

type SelectStaff struct {
	Staff models.Staff `json:"staff"`
}

type SelectLocation struct {
	Location models.Location `json:"location"`
}

type SelectDate struct {
	Date string `json:"date"`
}

type SelectSlot struct {
	Slot models.TimeSlot `json:"slot"`
}

// SelectTimeSlot sets slot, date and timezone transactionally: the slot
// carries its own date.
type SelectTimeSlot struct {
	Date     string          `json:"date"`
	Slot     models.TimeSlot `json:"timeSlot"`
	Timezone string          `json:"timezone,omitempty"`
}

type SetTimezone struct {
	Timezone string `json:"timezone"`
}

type SetFlexibleSettings struct {
	Settings models.FlexibleBookingSettings `json:"settings"`
}

type UpdateFormData struct {
	Partial models.FormData `json:"partial"`
}

type SetStep struct {
	Step models.BookingStep `json:"step"`
}

type ResetSelections struct{}

type ResetFlow struct{}

type SetBookingConfirmation struct {
	Confirmation models.BookingConfirmation `json:"confirmation"`
}

func (SetBusinessInfo) ActionType() string          { return "SET_BUSINESS_INFO" }
func (SelectService) ActionType() string            { return "SELECT_SERVICE" }
func (SelectServiceCategory) ActionType() string    { return "SELECT_SERVICE_CATEGORY" }
func (SelectServiceSubcategory) ActionType() string { return "SELECT_SERVICE_SUBCATEGORY" }
func (SelectStaff) ActionType() string              { return "SELECT_STAFF" }
func (SelectLocation) ActionType() string           { return "SELECT_LOCATION" }
func (SelectDate) ActionType() string               { return "SELECT_DATE" }
func (SelectSlot) ActionType() string               { return "SELECT_SLOT" }
func (SelectTimeSlot) ActionType() string           { return "SELECT_TIME_SLOT" }
func (SetTimezone) ActionType() string              { return "SET_TIMEZONE" }
func (SetFlexibleSettings) ActionType() string      { return "SET_FLEXIBLE_SETTINGS" }
func (UpdateFormData) ActionType() string           { return "UPDATE_FORM_DATA" }
func (SetStep) ActionType() string                  { return "SET_STEP" }
func (ResetSelections) ActionType() string          { return "RESET_SELECTIONS" }
func (ResetFlow) ActionType() string                { return "RESET_FLOW" }
func (SetBookingConfirmation) ActionType() string   { return "SET_BOOKING_CONFIRMATION" }

// DecodeAction turns a wire-level {type, payload} pair into a typed action.
// Unknown types are rejected so payload-shape ambiguity never reaches the
// reducer.
func DecodeAction(actionType string, payload json.RawMessage) (Action, error) {
	unmarshal := func(dst Action) (Action, error) {
		if len(payload) == 0 {
			return dst, nil
		}
		if err := json.Unmarshal(payload, dst); err != nil {
			return nil, fmt.Errorf("invalid payload for %s: %w", actionType, err)
		}
		return dst, nil
	}

	switch actionType {
	case "SET_BUSINESS_INFO":
		a, err := unmarshal(&SetBusinessInfo{})
		return deref(a), err
	case "SELECT_SERVICE":
		a, err := unmarshal(&SelectService{})
		return deref(a), err
	case "SELECT_SERVICE_CATEGORY":
		a, err := unmarshal(&SelectServiceCategory{})
		return deref(a), err
	case "SELECT_SERVICE_SUBCATEGORY":
		a, err := unmarshal(&SelectServiceSubcategory{})
		return deref(a), err
	case "SELECT_STAFF":
		a, err := unmarshal(&SelectStaff{})
		return deref(a), err
	case "SELECT_LOCATION":
		a, err := unmarshal(&SelectLocation{})
		return deref(a), err
	case "SELECT_DATE":
		a, err := unmarshal(&SelectDate{})
		return deref(a), err
	case "SELECT_SLOT":
		a, err := unmarshal(&SelectSlot{})
		return deref(a), err
	case "SELECT_TIME_SLOT":
		a, err := unmarshal(&SelectTimeSlot{})
		return deref(a), err
	case "SET_TIMEZONE":
		a, err := unmarshal(&SetTimezone{})
		return deref(a), err
	case "SET_FLEXIBLE_SETTINGS":
		a, err := unmarshal(&SetFlexibleSettings{})
		return deref(a), err
	case "UPDATE_FORM_DATA":
		a, err := unmarshal(&UpdateFormData{})
		return deref(a), err
	case "SET_STEP", "SET_CURRENT_STEP":
		a, err := unmarshal(&SetStep{})
		return deref(a), err
	case "RESET_SELECTIONS":
		return ResetSelections{}, nil
	case "RESET_FLOW":
		return ResetFlow{}, nil
	default:
		return nil, fmt.Errorf("unknown action type %q", actionType)
	}
}

// deref unwraps the pointer the decoder filled so reducers always see value
// actions.
func deref(a Action) Action {
	switch v := a.(type) {
	case *SetBusinessInfo:
		return *v
	case *SelectService:
		return *v
	case *SelectServiceCategory:
		return *v
	case *SelectServiceSubcategory:
		return *v
	case *SelectStaff:
		return *v
	case *SelectLocation:
		return *v
	case *SelectDate:
		return *v
	case *SelectSlot:
		return *v
	case *SelectTimeSlot:
		return *v
	case *SetTimezone:
		return *v
	case *SetFlexibleSettings:
		return *v
	case *UpdateFormData:
		return *v
	case *SetStep:
		return *v
	case *SetBookingConfirmation:
		return *v
	default:
		return a
	}
}
