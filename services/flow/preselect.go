package flow

import (
	"go.uber.org/zap"

	"flowbook/models"
)

// ResolvePreselection reconciles URL-supplied entity ids against the loaded
// catalog and directory data, seeding the flow with the selections the link
// implies. It runs at most once per session: any existing service or category
// selection makes it a no-op, which also guards against the inputs
// re-resolving during loading.
//
// An id that matches nothing is not an error; the flow simply starts
// unassisted at the service step. The miss is logged for diagnostics.
func ResolvePreselection(
	state models.FlowState,
	input models.PreselectionInput,
	catalog models.Catalog,
	staff []models.Staff,
	locations []models.Location,
	logger *zap.Logger,
) models.FlowState {
	if input.Empty() {
		return state
	}
	if state.SelectedService != nil || state.SelectedCategory != nil {
		return state
	}

	// Direct session link: fully specified fixed-mode booking, jump straight
	// to the date step.
	if input.SessionID != 0 {
		for _, svc := range catalog.Services {
			if svc.SessionID == input.SessionID || svc.ID == input.SessionID {
				synthesized := svc
				synthesized.IsSession = true
				state = Reduce(state, SelectService{Service: synthesized})
				return Reduce(state, SetStep{Step: models.StepDate})
			}
		}
		logger.Debug("preselected session not found in catalog",
			zap.Int64("sessionId", input.SessionID))
		return state
	}

	if input.ServiceID == 0 {
		return state
	}

	// Direct service link: resolve a bookable subcategory, then any staff and
	// location the link also names.
	for _, cat := range catalog.Categories {
		for _, sub := range cat.Subcategories {
			if sub.ID != input.ServiceID || !sub.IsService {
				continue
			}
			state = Reduce(state, SelectServiceCategory{Category: cat})
			state = Reduce(state, SelectServiceSubcategory{Subcategory: sub})

			staffResolved := false
			if input.StaffID != 0 {
				for _, st := range staff {
					if st.ID == input.StaffID {
						state = Reduce(state, SelectStaff{Staff: st})
						staffResolved = true
						break
					}
				}
			}
			locationResolved := false
			if input.LocationID != 0 {
				for _, loc := range locations {
					if loc.ID == input.LocationID {
						state = Reduce(state, SelectLocation{Location: loc})
						locationResolved = true
						break
					}
				}
			}

			var next models.BookingStep
			switch {
			case staffResolved && locationResolved:
				next = models.StepDate
			case staffResolved:
				next = models.StepLocation
			case locationResolved:
				next = models.StepStaff
			default:
				// Canonical flexible-mode step after subcategory.
				next = models.StepLocation
			}
			return Reduce(state, SetStep{Step: next})
		}
	}

	logger.Debug("preselected service not found in catalog",
		zap.Int64("serviceId", input.ServiceID))
	return state
}
