// File: database/repository/directory/interface.go
package directoryRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"flowbook/database"
	"flowbook/models"
)

type DirectoryRepository interface {
	GetStaff(ctx context.Context, businessID string) ([]models.Staff, error)
	GetLocations(ctx context.Context, businessID string) ([]models.Location, error)
}

type mongoDirectoryRepo struct {
	staff     *mongo.Collection
	locations *mongo.Collection
}

// NewMongoDirectoryRepo constructs a new MongoDB DirectoryRepository.
func NewMongoDirectoryRepo() DirectoryRepository {
	db := database.DB()
	return &mongoDirectoryRepo{
		staff:     db.Collection("staff"),
		locations: db.Collection("locations"),
	}
}
