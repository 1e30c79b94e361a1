package mongo

import (
	"context"
	"time"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type applicationRepo struct {
	col *mongo.Collection
}

func NewApplicationRepo(db *mongo.Database) repositories.ApplicationRepository {
	return &applicationRepo{col: db.Collection("applications")}
}

func (r *applicationRepo) Insert(ctx context.Context, a *models.Application) error {
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *applicationRepo) ListByUser(ctx context.Context, userID string) ([]models.Application, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Application
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
