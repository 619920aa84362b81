// File: database/repository/business/crud.go
package businessRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"flowbook/models"
)

func (r *mongoBusinessRepo) GetBySlug(ctx context.Context, slug string) (*models.BusinessInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var biz models.BusinessInfo
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&biz); err != nil {
		return nil, err
	}
	return &biz, nil
}

func (r *mongoBusinessRepo) GetByID(ctx context.Context, id string) (*models.BusinessInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var biz models.BusinessInfo
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&biz); err != nil {
		return nil, err
	}
	return &biz, nil
}
