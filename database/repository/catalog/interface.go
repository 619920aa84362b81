// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"flowbook/database"
	"flowbook/models"
)

type CatalogRepository interface {
	GetServices(ctx context.Context, businessID string) ([]models.Service, error)
	GetCategories(ctx context.Context, businessID string) ([]models.Category, error)
}

type mongoCatalogRepo struct {
	services   *mongo.Collection
	categories *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		services:   db.Collection("services"),
		categories: db.Collection("categories"),
	}
}
