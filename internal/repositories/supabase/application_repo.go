package supabase

import (
	"context"
	"sort"

	supa "github.com/nedpals/supabase-go"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
)

const applicationsTable = "applications"

type applicationRepo struct {
	client *supa.Client
}

func NewApplicationRepo(client *supa.Client) repositories.ApplicationRepository {
	return &applicationRepo{client: client}
}

func (r *applicationRepo) Insert(ctx context.Context, a *models.Application) error {
	var rows []models.Application
	if err := execute(ctx, r.client.DB.From(applicationsTable).Insert(*a), &rows); err != nil {
		return err
	}
	if len(rows) > 0 {
		*a = rows[0]
	}
	return nil
}

func (r *applicationRepo) ListByUser(ctx context.Context, userID string) ([]models.Application, error) {
	var rows []models.Application
	req := r.client.DB.From(applicationsTable).Select("*").Eq("user_id", userID)
	if err := execute(ctx, req, &rows); err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].AppliedAt.After(rows[j].AppliedAt) })
	return rows, nil
}
