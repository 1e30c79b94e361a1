package supabase

import (
	"context"
	"sort"

	supa "github.com/nedpals/supabase-go"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

const jobsTable = "jobs"

type jobRepo struct {
	client *supa.Client
}

func NewJobRepo(client *supa.Client) repositories.JobRepository {
	return &jobRepo{client: client}
}

func (r *jobRepo) List(ctx context.Context, limit int) ([]models.Job, error) {
	var rows []models.Job
	q := r.client.DB.From(jobsTable).Select("*")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := execute(ctx, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *jobRepo) ListActive(ctx context.Context) ([]models.Job, error) {
	var rows []models.Job
	req := r.client.DB.From(jobsTable).Select("*").Eq("is_active", "true")
	if err := execute(ctx, req, &rows); err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Title < rows[j].Title })
	return rows, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var rows []models.Job
	req := r.client.DB.From(jobsTable).Select("*").Eq("id", id)
	if err := execute(ctx, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.ErrNotFound
	}
	return &rows[0], nil
}

func (r *jobRepo) InsertMany(ctx context.Context, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	var rows []models.Job
	return execute(ctx, r.client.DB.From(jobsTable).Insert(jobs), &rows)
}
