package mongo

import (
	"context"
	"errors"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type profileRepo struct {
	col *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) repositories.ProfileRepository {
	return &profileRepo{col: db.Collection("profiles")}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Insert(ctx context.Context, p *models.Profile) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *profileRepo) UpdateByUserID(ctx context.Context, userID string, columns map[string]any) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M(columns)},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
