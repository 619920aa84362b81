// File: database/repository/occurrence/crud.go
package occurrenceRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flowbook/models"
)

func (r *mongoOccurrenceRepo) GetByServiceAndRange(ctx context.Context, businessID string, serviceID int64, from, to string) ([]models.SessionOccurrence, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"businessId": businessID,
		"serviceId":  serviceID,
		"date":       bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var occurrences []models.SessionOccurrence
	if err := cursor.All(ctx, &occurrences); err != nil {
		return nil, err
	}
	return occurrences, nil
}

func (r *mongoOccurrenceRepo) GetBySessionAndDate(ctx context.Context, businessID string, sessionID int64, date string) (*models.SessionOccurrence, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"businessId": businessID, "sessionId": sessionID, "date": date}
	var occ models.SessionOccurrence
	if err := r.coll.FindOne(ctx, filter).Decode(&occ); err != nil {
		return nil, err
	}
	return &occ, nil
}
