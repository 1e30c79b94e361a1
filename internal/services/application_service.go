package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/internal/cache"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

const userApplicationsTTL = 2 * time.Minute

type ApplicationService interface {
	// Submit creates one pending application. Repeated calls create repeated rows.
	Submit(ctx context.Context, jobID, userID, coverLetter string) (*models.Application, error)
	ListMine(ctx context.Context, userID string) ([]models.Application, error)
}

type applicationService struct {
	apps  repositories.ApplicationRepository
	cache cache.Cache // optional
	log   logrus.FieldLogger
}

func NewApplicationService(apps repositories.ApplicationRepository, c cache.Cache, log logrus.FieldLogger) ApplicationService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &applicationService{apps: apps, cache: c, log: log}
}

func (s *applicationService) Submit(ctx context.Context, jobID, userID, coverLetter string) (*models.Application, error) {
	const op = "ApplicationService.Submit"

	if userID == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "sign in required", nil)
	}
	if jobID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job_id is required", nil)
	}

	app := &models.Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		UserID:      userID,
		CoverLetter: optionalText(coverLetter),
		Status:      models.StatusPending,
		AppliedAt:   time.Now().UTC(),
	}

	if err := s.apps.Insert(ctx, app); err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to submit application", err)
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, cache.UserApplicationsKey(userID)); err != nil {
			s.log.WithError(err).WithField("user_id", userID).Warn("applications cache invalidation failed")
		}
	}
	return app, nil
}

func (s *applicationService) ListMine(ctx context.Context, userID string) ([]models.Application, error) {
	const op = "ApplicationService.ListMine"

	if userID == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "sign in required", nil)
	}

	key := cache.UserApplicationsKey(userID)
	if s.cache != nil {
		var cached []models.Application
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			s.log.WithError(err).WithField("key", key).Warn("cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	rows, err := s.apps.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to list applications", err)
	}
	if rows == nil {
		rows = []models.Application{}
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, rows, userApplicationsTTL); err != nil {
			s.log.WithError(err).Warn("applications cache write failed")
		}
	}
	return rows, nil
}

// optionalText trims s and maps blank input to nil so it is stored as NULL.
func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
