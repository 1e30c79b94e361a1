package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the indexes the mongo gateway relies on. The
// unique profiles.user_id index is what keeps lazy creation to one row per user.
func EnsureMongoIndexes(db *mongo.Database) error {
	if db == nil {
		return errors.New("mongo database is nil; call InitMongo() first")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Collection("profiles").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetName("uniq_user_id").SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("jobs").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetName("by_active_title"),
		},
		{
			Keys:    bson.D{{Key: "company_id", Value: 1}},
			Options: options.Index().SetName("by_company"),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("applications").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "applied_at", Value: -1}},
		Options: options.Index().SetName("by_user_applied"),
	})
	return err
}
