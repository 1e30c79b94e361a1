package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

var ada = models.Identity{UserID: "8c1d4e7a-0000-4000-8000-000000000001", Email: "ada@example.com", FullName: "Ada Lovelace"}

func TestProfileService_LoadCreatesDefaultOnce(t *testing.T) {
	repo := newFakeProfiles()
	svc := NewProfileService(repo)
	ctx := context.Background()

	first, err := svc.Load(ctx, ada)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if first.ExperienceLevel != models.LevelEntry {
		t.Errorf("experience_level = %q, want entry", first.ExperienceLevel)
	}
	if len(first.Skills) != 0 {
		t.Errorf("skills = %v, want empty", first.Skills)
	}
	if first.FullName != ada.FullName || first.Email != ada.Email {
		t.Errorf("identity not copied: %+v", first)
	}
	if first.Phone != "" || first.Location != "" || first.ResumeURL != "" {
		t.Errorf("optional fields should be empty: %+v", first)
	}
	if first.ID == "" {
		t.Error("persisted profile has no id")
	}

	second, err := svc.Load(ctx, ada)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if repo.inserts != 1 {
		t.Errorf("inserts = %d, want 1", repo.inserts)
	}
	if second.ID != first.ID {
		t.Errorf("second load returned %q, want %q", second.ID, first.ID)
	}
}

func TestProfileService_LoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		id       models.Identity
		getErr   error
		insErr   error
		wantCode utils.Code
	}{
		{name: "anonymous", id: models.Identity{}, wantCode: utils.CodeUnauthorized},
		{name: "fetch fault is not lazy-create", id: ada, getErr: errGateway, wantCode: utils.CodeUnavailable},
		{name: "create fault", id: ada, insErr: errGateway, wantCode: utils.CodeUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeProfiles()
			repo.getErr, repo.insertErr = tt.getErr, tt.insErr

			p, err := NewProfileService(repo).Load(context.Background(), tt.id)
			if p != nil {
				t.Errorf("expected no profile, got %+v", p)
			}
			if !utils.IsCode(err, tt.wantCode) {
				t.Errorf("err = %v, want code %s", err, tt.wantCode)
			}
			if repo.inserts != 0 {
				t.Errorf("inserts = %d, want 0", repo.inserts)
			}
		})
	}
}

func TestProfileService_SaveExcludesEmail(t *testing.T) {
	repo := newFakeProfiles()
	svc := NewProfileService(repo)
	ctx := context.Background()

	p, err := svc.Load(ctx, ada)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p.Email = "mallory@example.com"
	p.Phone = "+1 555 0100"
	p.Location = "London"
	p.ExperienceLevel = models.LevelSenior
	p.AddSkill("Go")

	if err := svc.Save(ctx, ada.UserID, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	stored := repo.rows[ada.UserID]
	if stored.Email != ada.Email {
		t.Errorf("email overwritten: %q", stored.Email)
	}
	if stored.Phone != "+1 555 0100" || stored.Location != "London" || stored.ExperienceLevel != models.LevelSenior {
		t.Errorf("fields not saved: %+v", stored)
	}
	if len(stored.Skills) != 1 || stored.Skills[0] != "Go" {
		t.Errorf("skills = %v", stored.Skills)
	}
}

func TestProfileService_SaveFailureKeepsLocalCopy(t *testing.T) {
	repo := newFakeProfiles()
	svc := NewProfileService(repo)
	ctx := context.Background()

	p, err := svc.Load(ctx, ada)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p.FullName = "Augusta Ada King"
	p.AddSkill("Rust")
	before := p.Clone()

	repo.updateErr = errGateway
	err = svc.Save(ctx, ada.UserID, p)
	if !utils.IsCode(err, utils.CodeUnavailable) {
		t.Fatalf("err = %v, want CodeUnavailable", err)
	}
	if !errors.Is(err, errGateway) {
		t.Error("gateway error not wrapped")
	}
	if p.FullName != before.FullName || len(p.Skills) != 1 || p.Skills[0] != "Rust" || !p.UpdatedAt.Equal(before.UpdatedAt) {
		t.Errorf("local profile changed on failure: %+v", p)
	}
}

func TestProfileService_SaveValidation(t *testing.T) {
	repo := newFakeProfiles()
	svc := NewProfileService(repo)

	p, _ := svc.Load(context.Background(), ada)
	p.ExperienceLevel = "intern"
	if err := svc.Save(context.Background(), ada.UserID, p); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Errorf("err = %v, want CodeInvalidArgument", err)
	}

	if err := svc.Save(context.Background(), "", p); !utils.IsCode(err, utils.CodeUnauthorized) {
		t.Errorf("err = %v, want CodeUnauthorized", err)
	}

	other := p.Clone()
	other.ExperienceLevel = models.LevelEntry
	if err := svc.Save(context.Background(), "someone-else", other); !utils.IsCode(err, utils.CodeNotFound) {
		t.Errorf("err = %v, want CodeNotFound", err)
	}
}
