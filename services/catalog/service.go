package catalog

import (
	"context"
	"fmt"

	"flowbook/models"
)

func (s *DefaultCatalogService) GetBusinessBySlug(ctx context.Context, slug string) (*models.BusinessInfo, error) {
	biz, err := s.BusinessRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load business %q: %w", slug, err)
	}
	return biz, nil
}

func (s *DefaultCatalogService) GetCatalog(ctx context.Context, businessID string) (*models.Catalog, error) {
	services, err := s.CatalogRepo.GetServices(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	categories, err := s.CatalogRepo.GetCategories(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return &models.Catalog{Services: services, Categories: categories}, nil
}
