package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/internal/cache"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

const listingTTL = 5 * time.Minute

type JobService interface {
	ListActive(ctx context.Context) ([]models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
}

type jobService struct {
	jobs      repositories.JobRepository
	companies repositories.CompanyRepository
	cache     cache.Cache // optional
	log       logrus.FieldLogger
}

func NewJobService(jobs repositories.JobRepository, companies repositories.CompanyRepository, c cache.Cache, log logrus.FieldLogger) JobService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &jobService{jobs: jobs, companies: companies, cache: c, log: log}
}

func (s *jobService) ListActive(ctx context.Context) ([]models.Job, error) {
	const op = "JobService.ListActive"

	var rows []models.Job
	if s.cachedInto(ctx, cache.ActiveJobsKey, &rows) {
		return rows, nil
	}

	rows, err := s.jobs.ListActive(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to list jobs", err)
	}
	if rows == nil {
		rows = []models.Job{}
	}
	s.store(ctx, cache.ActiveJobsKey, rows)
	return rows, nil
}

func (s *jobService) Get(ctx context.Context, id string) (*models.Job, error) {
	const op = "JobService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job_id is required", nil)
	}
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeUnavailable, op, "failed to get job", err)
	}
	return j, nil
}

func (s *jobService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	const op = "JobService.ListCompanies"

	var rows []models.Company
	if s.cachedInto(ctx, cache.CompaniesKey, &rows) {
		return rows, nil
	}

	rows, err := s.companies.List(ctx, 0)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to list companies", err)
	}
	if rows == nil {
		rows = []models.Company{}
	}
	s.store(ctx, cache.CompaniesKey, rows)
	return rows, nil
}

func (s *jobService) cachedInto(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, dst)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("cache read failed")
		return false
	}
	return hit
}

func (s *jobService) store(ctx context.Context, key string, val any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, val, listingTTL); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}
