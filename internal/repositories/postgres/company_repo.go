package postgres

import (
	"context"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"gorm.io/gorm"
)

type companyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) repositories.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) List(ctx context.Context, limit int) ([]models.Company, error) {
	q := r.db.WithContext(ctx)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []models.Company
	err := q.Find(&rows).Error
	return rows, err
}

func (r *companyRepo) InsertMany(ctx context.Context, companies []models.Company) error {
	if len(companies) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&companies).Error
}
