package directory

import (
	"context"
	"fmt"

	"flowbook/models"
)

func (s *DefaultDirectoryService) GetStaff(ctx context.Context, businessID string) ([]models.Staff, error) {
	staff, err := s.Repo.GetStaff(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}
	return staff, nil
}

func (s *DefaultDirectoryService) GetLocations(ctx context.Context, businessID string) ([]models.Location, error) {
	locations, err := s.Repo.GetLocations(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	return locations, nil
}
