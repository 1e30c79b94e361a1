package mongo

import (
	"context"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type companyRepo struct {
	col *mongo.Collection
}

func NewCompanyRepo(db *mongo.Database) repositories.CompanyRepository {
	return &companyRepo{col: db.Collection("companies")}
}

func (r *companyRepo) List(ctx context.Context, limit int) ([]models.Company, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Company
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *companyRepo) InsertMany(ctx context.Context, companies []models.Company) error {
	if len(companies) == 0 {
		return nil
	}
	docs := make([]interface{}, len(companies))
	for i := range companies {
		docs[i] = companies[i]
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}
