// Package repositories defines the gateway contract consumed by the services.
// Each driver subpackage (supabase, postgres, mongo) implements every interface
// and maps "zero rows matched" to utils.ErrNotFound.
package repositories

import (
	"context"

	"github.com/yoockh/jobboard/internal/models"
)

type ProfileRepository interface {
	// GetByUserID returns utils.ErrNotFound when the user has no profile yet.
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Insert(ctx context.Context, p *models.Profile) error
	// UpdateByUserID writes columns (see models.Profile.UpdateColumns) and
	// returns utils.ErrNotFound when no row matched.
	UpdateByUserID(ctx context.Context, userID string, columns map[string]any) error
}

type CompanyRepository interface {
	// List returns at most limit rows; limit <= 0 means all rows.
	List(ctx context.Context, limit int) ([]models.Company, error)
	InsertMany(ctx context.Context, companies []models.Company) error
}

type JobRepository interface {
	List(ctx context.Context, limit int) ([]models.Job, error)
	ListActive(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	InsertMany(ctx context.Context, jobs []models.Job) error
}

type ApplicationRepository interface {
	Insert(ctx context.Context, a *models.Application) error
	ListByUser(ctx context.Context, userID string) ([]models.Application, error)
}

// Set bundles one driver's repositories.
type Set struct {
	Profiles     ProfileRepository
	Companies    CompanyRepository
	Jobs         JobRepository
	Applications ApplicationRepository
}
