package mongo

import (
	"context"
	"errors"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type jobRepo struct {
	col *mongo.Collection
}

func NewJobRepo(db *mongo.Database) repositories.JobRepository {
	return &jobRepo{col: db.Collection("jobs")}
}

func (r *jobRepo) List(ctx context.Context, limit int) ([]models.Job, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.find(ctx, bson.M{}, opts)
}

func (r *jobRepo) ListActive(ctx context.Context) ([]models.Job, error) {
	return r.find(ctx,
		bson.M{"is_active": true},
		options.Find().SetSort(bson.D{{Key: "title", Value: 1}}),
	)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) InsertMany(ctx context.Context, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(jobs))
	for i := range jobs {
		docs[i] = jobs[i]
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *jobRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Job, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Job
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
