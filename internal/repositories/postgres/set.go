package postgres

import (
	"github.com/yoockh/jobboard/internal/repositories"
	"gorm.io/gorm"
)

// NewSet wires every postgres repository on one connection.
func NewSet(db *gorm.DB) repositories.Set {
	return repositories.Set{
		Profiles:     NewProfileRepo(db),
		Companies:    NewCompanyRepo(db),
		Jobs:         NewJobRepo(db),
		Applications: NewApplicationRepo(db),
	}
}
