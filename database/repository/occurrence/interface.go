// File: database/repository/occurrence/interface.go
package occurrenceRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"flowbook/database"
	"flowbook/models"
)

type OccurrenceRepository interface {
	GetByServiceAndRange(ctx context.Context, businessID string, serviceID int64, from, to string) ([]models.SessionOccurrence, error)
	GetBySessionAndDate(ctx context.Context, businessID string, sessionID int64, date string) (*models.SessionOccurrence, error)
}

type mongoOccurrenceRepo struct {
	coll *mongo.Collection
}

// NewMongoOccurrenceRepo constructs a new MongoDB OccurrenceRepository.
func NewMongoOccurrenceRepo() OccurrenceRepository {
	return &mongoOccurrenceRepo{
		coll: database.DB().Collection("occurrences"),
	}
}
