package supabase

import (
	"context"

	supa "github.com/nedpals/supabase-go"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
)

const companiesTable = "companies"

type companyRepo struct {
	client *supa.Client
}

func NewCompanyRepo(client *supa.Client) repositories.CompanyRepository {
	return &companyRepo{client: client}
}

func (r *companyRepo) List(ctx context.Context, limit int) ([]models.Company, error) {
	var rows []models.Company
	q := r.client.DB.From(companiesTable).Select("*")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := execute(ctx, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *companyRepo) InsertMany(ctx context.Context, companies []models.Company) error {
	if len(companies) == 0 {
		return nil
	}
	var rows []models.Company
	return execute(ctx, r.client.DB.From(companiesTable).Insert(companies), &rows)
}
