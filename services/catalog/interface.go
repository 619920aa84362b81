package catalog

import (
	"context"

	businessRepo "flowbook/database/repository/business"
	catalogRepo "flowbook/database/repository/catalog"
	"flowbook/models"
)

// Service exposes the booking catalog for one business: legacy session
// records plus category trees, and the business profile itself.
type Service interface {
	GetBusinessBySlug(ctx context.Context, slug string) (*models.BusinessInfo, error)
	GetCatalog(ctx context.Context, businessID string) (*models.Catalog, error)
}

// DefaultCatalogService implements Service.
type DefaultCatalogService struct {
	BusinessRepo businessRepo.BusinessRepository
	CatalogRepo  catalogRepo.CatalogRepository
}
