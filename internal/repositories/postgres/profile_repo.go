package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
	"gorm.io/gorm"
)

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Insert(ctx context.Context, p *models.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *profileRepo) UpdateByUserID(ctx context.Context, userID string, columns map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(columns)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
