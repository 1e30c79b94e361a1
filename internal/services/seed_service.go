package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/internal/cache"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

type SeedResult struct {
	CompaniesInserted int `json:"companies_inserted"`
	JobsInserted      int `json:"jobs_inserted"`
}

type SeedService interface {
	// ConnectionCheck reads one company row. It never returns an error:
	// any failure is logged and reported as false.
	ConnectionCheck(ctx context.Context) bool
	// Seed inserts the sample companies and jobs into empty collections.
	// It does not reconcile content and does not roll back partial inserts.
	Seed(ctx context.Context) (SeedResult, error)
}

type seedService struct {
	companies repositories.CompanyRepository
	jobs      repositories.JobRepository
	cache     cache.Cache // optional
	log       logrus.FieldLogger
	newID     func() string
}

func NewSeedService(companies repositories.CompanyRepository, jobs repositories.JobRepository, c cache.Cache, log logrus.FieldLogger) SeedService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &seedService{
		companies: companies,
		jobs:      jobs,
		cache:     c,
		log:       log,
		newID:     uuid.NewString,
	}
}

func (s *seedService) ConnectionCheck(ctx context.Context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("panic", r).Error("database connection test failed")
			ok = false
		}
	}()

	if _, err := s.companies.List(ctx, 1); err != nil {
		s.log.WithError(err).Error("database connection failed")
		return false
	}
	s.log.Debug("database connection successful")
	return true
}

func (s *seedService) Seed(ctx context.Context) (SeedResult, error) {
	const op = "SeedService.Seed"
	var res SeedResult

	s.log.Info("initializing database with sample data")

	existing, err := s.companies.List(ctx, 1)
	if err != nil {
		return res, utils.E(utils.CodeUnavailable, op, "failed to check companies", err)
	}
	if len(existing) == 0 {
		s.log.Info("creating sample companies")
		companies := SampleCompanies()
		for i := range companies {
			companies[i].ID = s.newID()
		}
		if err := s.companies.InsertMany(ctx, companies); err != nil {
			return res, utils.E(utils.CodeUnavailable, op, "failed to create sample companies", err)
		}
		res.CompaniesInserted = len(companies)
	}

	existingJobs, err := s.jobs.List(ctx, 1)
	if err != nil {
		return res, utils.E(utils.CodeUnavailable, op, "failed to check jobs", err)
	}
	if len(existingJobs) == 0 {
		s.log.Info("creating sample jobs")
		all, err := s.companies.List(ctx, 0)
		if err != nil {
			return res, utils.E(utils.CodeUnavailable, op, "failed to list companies", err)
		}
		if len(all) == 0 {
			return res, utils.E(utils.CodeInternal, op, "no companies found to create jobs", nil)
		}

		jobs := SampleJobs(all)
		for i := range jobs {
			jobs[i].ID = s.newID()
			if err := jobs[i].Validate(); err != nil {
				return res, utils.E(utils.CodeInternal, op, "invalid sample job", err)
			}
		}
		if err := s.jobs.InsertMany(ctx, jobs); err != nil {
			return res, utils.E(utils.CodeUnavailable, op, "failed to create sample jobs", err)
		}
		res.JobsInserted = len(jobs)
	}

	if s.cache != nil && (res.CompaniesInserted > 0 || res.JobsInserted > 0) {
		if err := s.cache.Del(ctx, cache.ActiveJobsKey, cache.CompaniesKey); err != nil {
			s.log.WithError(err).Warn("listing cache invalidation failed")
		}
	}

	s.log.WithFields(logrus.Fields{
		"companies_inserted": res.CompaniesInserted,
		"jobs_inserted":      res.JobsInserted,
	}).Info("database initialization complete")
	return res, nil
}
