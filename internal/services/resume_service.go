package services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/storage"
	"github.com/yoockh/jobboard/internal/utils"
)

const resumeContentType = "application/pdf"

type ResumeService interface {
	// Upload stores the PDF and points the caller's profile resume_url at it.
	Upload(ctx context.Context, id models.Identity, r io.Reader) (*models.Profile, error)
}

type resumeService struct {
	profiles ProfileService
	uploader storage.Uploader
}

func NewResumeService(profiles ProfileService, uploader storage.Uploader) ResumeService {
	return &resumeService{profiles: profiles, uploader: uploader}
}

func (s *resumeService) Upload(ctx context.Context, id models.Identity, r io.Reader) (*models.Profile, error) {
	const op = "ResumeService.Upload"

	if id.UserID == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "sign in required", nil)
	}
	if s.uploader == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "resume storage is not configured", nil)
	}

	p, err := s.profiles.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, storage.ResumeObjectName(id.UserID, uuid.NewString()), resumeContentType, r)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload resume", err)
	}

	edited := p.Clone()
	edited.ResumeURL = url
	if err := s.profiles.Save(ctx, id.UserID, edited); err != nil {
		return nil, err
	}
	return edited, nil
}
