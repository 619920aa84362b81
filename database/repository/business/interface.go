// File: database/repository/business/interface.go
package businessRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"flowbook/database"
	"flowbook/models"
)

type BusinessRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.BusinessInfo, error)
	GetByID(ctx context.Context, id string) (*models.BusinessInfo, error)
}

type mongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo constructs a new MongoDB BusinessRepository.
func NewMongoBusinessRepo() BusinessRepository {
	return &mongoBusinessRepo{
		coll: database.DB().Collection("businesses"),
	}
}
