package availability

import (
	"context"
	"fmt"

	"flowbook/models"
)

func (s *DefaultAvailabilityService) GetSlots(ctx context.Context, businessID string, serviceID int64, from, to string) ([]models.TimeSlot, error) {
	occurrences, err := s.OccurrenceRepo.GetByServiceAndRange(ctx, businessID, serviceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load occurrences: %w", err)
	}

	slots := make([]models.TimeSlot, 0, len(occurrences))
	for _, occ := range occurrences {
		booked, err := s.BookingRepo.CountBookedSpots(ctx, businessID, occ.SessionID, occ.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to count booked spots: %w", err)
		}
		slots = append(slots, SlotFromOccurrence(occ, booked))
	}
	return slots, nil
}

func (s *DefaultAvailabilityService) GetSlot(ctx context.Context, businessID string, sessionID int64, date string) (*models.TimeSlot, error) {
	occ, err := s.OccurrenceRepo.GetBySessionAndDate(ctx, businessID, sessionID, date)
	if err != nil {
		return nil, fmt.Errorf("occurrence not found: %w", err)
	}
	booked, err := s.BookingRepo.CountBookedSpots(ctx, businessID, occ.SessionID, occ.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to count booked spots: %w", err)
	}
	slot := SlotFromOccurrence(*occ, booked)
	return &slot, nil
}

// SlotFromOccurrence derives a public availability slot from a stored
// occurrence and the number of spots already booked on it.
func SlotFromOccurrence(occ models.SessionOccurrence, booked int) models.TimeSlot {
	available := occ.TotalSpots - booked
	if available < 0 {
		available = 0
	}
	return models.TimeSlot{
		Date:           occ.Date,
		StartTime:      occ.StartTime,
		EndTime:        occ.EndTime,
		SessionID:      occ.SessionID,
		CapacityStatus: capacityStatus(available, occ.TotalSpots),
		AvailableSpots: available,
		TotalSpots:     occ.TotalSpots,
	}
}

// capacityStatus buckets remaining capacity: full at zero, limited at 20% or
// less, otherwise available.
func capacityStatus(available, total int) string {
	switch {
	case available <= 0:
		return models.CapacityFull
	case total > 0 && available*5 <= total:
		return models.CapacityLimited
	default:
		return models.CapacityAvailable
	}
}
