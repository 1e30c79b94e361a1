package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

var errGateway = errors.New("fetch failed: connection reset by peer")

type fakeProfiles struct {
	rows      map[string]models.Profile
	inserts   int
	getErr    error
	insertErr error
	updateErr error
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{rows: map[string]models.Profile{}}
}

func (f *fakeProfiles) GetByUserID(_ context.Context, userID string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.rows[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return p.Clone(), nil
}

func (f *fakeProfiles) Insert(_ context.Context, p *models.Profile) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserts++
	f.rows[p.UserID] = *p.Clone()
	return nil
}

func (f *fakeProfiles) UpdateByUserID(_ context.Context, userID string, columns map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	p, ok := f.rows[userID]
	if !ok {
		return utils.ErrNotFound
	}
	for k, v := range columns {
		switch k {
		case "full_name":
			p.FullName = v.(string)
		case "phone":
			p.Phone = v.(string)
		case "location":
			p.Location = v.(string)
		case "resume_url":
			p.ResumeURL = v.(string)
		case "experience_level":
			p.ExperienceLevel = models.ExperienceLevel(v.(string))
		case "skills":
			p.Skills = append(pq.StringArray{}, v.(pq.StringArray)...)
		case "updated_at":
			p.UpdatedAt = v.(time.Time)
		case "email":
			p.Email = v.(string)
		}
	}
	f.rows[userID] = p
	return nil
}

type fakeCompanies struct {
	rows      []models.Company
	listErr   error
	insertErr error
	inserted  int
}

func (f *fakeCompanies) List(_ context.Context, limit int) ([]models.Company, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := append([]models.Company(nil), f.rows...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCompanies) InsertMany(_ context.Context, companies []models.Company) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.rows = append(f.rows, companies...)
	f.inserted += len(companies)
	return nil
}

type fakeJobs struct {
	rows      []models.Job
	listErr   error
	insertErr error
	inserted  int
}

func (f *fakeJobs) List(_ context.Context, limit int) ([]models.Job, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := append([]models.Job(nil), f.rows...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeJobs) ListActive(_ context.Context) ([]models.Job, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Job
	for _, j := range f.rows {
		if j.IsActive {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobs) GetByID(_ context.Context, id string) (*models.Job, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	for _, j := range f.rows {
		if j.ID == id {
			j := j
			return &j, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeJobs) InsertMany(_ context.Context, jobs []models.Job) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.rows = append(f.rows, jobs...)
	f.inserted += len(jobs)
	return nil
}

type fakeApplications struct {
	rows      []models.Application
	insertErr error
	lists     int
}

func (f *fakeApplications) Insert(_ context.Context, a *models.Application) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.rows = append(f.rows, *a)
	return nil
}

func (f *fakeApplications) ListByUser(_ context.Context, userID string) ([]models.Application, error) {
	f.lists++
	var out []models.Application
	for _, a := range f.rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// memCache is a map-backed cache.Cache storing values by reference.
type memCache struct {
	mu      sync.Mutex
	entries map[string]any
	dels    []string
	getErr  error
}

func newMemCache() *memCache { return &memCache{entries: map[string]any{}} }

func (c *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	v, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]models.Application:
		*d = v.([]models.Application)
	case *[]models.Job:
		*d = v.([]models.Job)
	case *[]models.Company:
		*d = v.([]models.Company)
	default:
		return false, nil
	}
	return true, nil
}

func (c *memCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = val
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
		c.dels = append(c.dels, k)
	}
	return nil
}
