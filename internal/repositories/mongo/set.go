package mongo

import (
	"github.com/yoockh/jobboard/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewSet wires every mongo repository on one database.
func NewSet(db *mongo.Database) repositories.Set {
	return repositories.Set{
		Profiles:     NewProfileRepo(db),
		Companies:    NewCompanyRepo(db),
		Jobs:         NewJobRepo(db),
		Applications: NewApplicationRepo(db),
	}
}
