package supabase

import (
	"context"

	supa "github.com/nedpals/supabase-go"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

const profilesTable = "profiles"

type profileRepo struct {
	client *supa.Client
}

func NewProfileRepo(client *supa.Client) repositories.ProfileRepository {
	return &profileRepo{client: client}
}

// GetByUserID selects without .single(): an empty result set is the
// not-found case, so no PostgREST error code has to be inspected.
func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var rows []models.Profile
	req := r.client.DB.From(profilesTable).Select("*").Eq("user_id", userID)
	if err := execute(ctx, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.ErrNotFound
	}
	return &rows[0], nil
}

func (r *profileRepo) Insert(ctx context.Context, p *models.Profile) error {
	var rows []models.Profile
	if err := execute(ctx, r.client.DB.From(profilesTable).Insert(*p), &rows); err != nil {
		return err
	}
	if len(rows) > 0 {
		*p = rows[0]
	}
	return nil
}

func (r *profileRepo) UpdateByUserID(ctx context.Context, userID string, columns map[string]any) error {
	var rows []models.Profile
	req := r.client.DB.From(profilesTable).Update(columns).Eq("user_id", userID)
	if err := execute(ctx, req, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return utils.ErrNotFound
	}
	return nil
}
