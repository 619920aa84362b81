package directory

import (
	"context"

	directoryRepo "flowbook/database/repository/directory"
	"flowbook/models"
)

// Service exposes a business's staff and location directories to the public
// widget.
type Service interface {
	GetStaff(ctx context.Context, businessID string) ([]models.Staff, error)
	GetLocations(ctx context.Context, businessID string) ([]models.Location, error)
}

// DefaultDirectoryService implements Service.
type DefaultDirectoryService struct {
	Repo directoryRepo.DirectoryRepository
}
