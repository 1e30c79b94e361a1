package postgres

import (
	"context"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"gorm.io/gorm"
)

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) repositories.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Insert(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *applicationRepo) ListByUser(ctx context.Context, userID string) ([]models.Application, error) {
	var rows []models.Application
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&rows).Error
	return rows, err
}
