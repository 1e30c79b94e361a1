package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

type ProfileService interface {
	// Load returns the caller's profile, creating and persisting the default
	// one on first access.
	Load(ctx context.Context, id models.Identity) (*models.Profile, error)
	// Save writes the editable columns. p is left untouched on failure.
	Save(ctx context.Context, userID string, p *models.Profile) error
}

type profileService struct {
	profiles repositories.ProfileRepository
	now      func() time.Time
}

func NewProfileService(profiles repositories.ProfileRepository) ProfileService {
	return &profileService{
		profiles: profiles,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *profileService) Load(ctx context.Context, id models.Identity) (*models.Profile, error) {
	const op = "ProfileService.Load"

	if id.UserID == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "sign in required", nil)
	}

	p, err := s.profiles.GetByUserID(ctx, id.UserID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to load profile", err)
	}

	p = models.NewDefaultProfile(id)
	p.ID = uuid.NewString()
	p.UpdatedAt = s.now()
	if err := s.profiles.Insert(ctx, p); err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to create profile", err)
	}
	return p, nil
}

func (s *profileService) Save(ctx context.Context, userID string, p *models.Profile) error {
	const op = "ProfileService.Save"

	if userID == "" {
		return utils.E(utils.CodeUnauthorized, op, "sign in required", nil)
	}
	if p == nil {
		return utils.E(utils.CodeInvalidArgument, op, "profile is required", nil)
	}
	if !p.ExperienceLevel.Valid() {
		return utils.E(utils.CodeInvalidArgument, op, "experience_level must be one of entry, mid-level, senior, executive", nil)
	}

	now := s.now()
	if err := s.profiles.UpdateByUserID(ctx, userID, p.UpdateColumns(now)); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return utils.E(utils.CodeUnavailable, op, "failed to save profile", err)
	}
	p.UpdatedAt = now
	return nil
}
