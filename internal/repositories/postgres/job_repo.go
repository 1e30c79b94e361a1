package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
	"gorm.io/gorm"
)

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) repositories.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) List(ctx context.Context, limit int) ([]models.Job, error) {
	q := r.db.WithContext(ctx)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []models.Job
	err := q.Find(&rows).Error
	return rows, err
}

func (r *jobRepo) ListActive(ctx context.Context) ([]models.Job, error) {
	var rows []models.Job
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("title ASC").
		Find(&rows).Error
	return rows, err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var row models.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *jobRepo) InsertMany(ctx context.Context, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&jobs).Error
}
