package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/services"
	"github.com/yoockh/jobboard/internal/utils"
	"github.com/yoockh/jobboard/internal/workflows"
)

type ProfileHandler struct {
	svc services.ProfileService
	log logrus.FieldLogger
}

func NewProfileHandler(svc services.ProfileService, log logrus.FieldLogger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: log}
}

type profileResponse struct {
	Profile *models.Profile       `json:"profile"`
	Load    workflows.LoadStatus  `json:"load_status"`
	Save    *workflows.SaveStatus `json:"save_status,omitempty"`
}

// Me returns the caller's profile, creating the default one on first visit.
func (h *ProfileHandler) Me(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	ed := workflows.NewProfileEditor(h.svc, id, h.log)
	p, err := ed.Load(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{Profile: p, Load: ed.LoadStatus()})
}

// UpdateProfileRequest carries partial edits. Email is not editable.
type UpdateProfileRequest struct {
	FullName        *string   `json:"full_name,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Location        *string   `json:"location,omitempty"`
	ExperienceLevel *string   `json:"experience_level,omitempty"`
	ResumeURL       *string   `json:"resume_url,omitempty"`
	Skills          *[]string `json:"skills,omitempty"` // replaces the set, then add/remove apply

	AddSkills    []string `json:"add_skills,omitempty"`
	RemoveSkills []string `json:"remove_skills,omitempty"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Update", "invalid request body", err))
		return
	}

	ctx := c.Request.Context()
	ed := workflows.NewProfileEditor(h.svc, id, h.log)
	if _, err := ed.Load(ctx); err != nil {
		writeError(c, err)
		return
	}

	ed.Update(func(p *models.Profile) {
		if req.FullName != nil {
			p.FullName = *req.FullName
		}
		if req.Phone != nil {
			p.Phone = *req.Phone
		}
		if req.Location != nil {
			p.Location = *req.Location
		}
		if req.ExperienceLevel != nil {
			p.ExperienceLevel = models.ExperienceLevel(*req.ExperienceLevel)
		}
		if req.ResumeURL != nil {
			p.ResumeURL = *req.ResumeURL
		}
		if req.Skills != nil {
			p.Skills = pq.StringArray{}
			for _, s := range *req.Skills {
				p.AddSkill(s)
			}
		}
	})
	for _, s := range req.AddSkills {
		ed.AddSkill(s)
	}
	for _, s := range req.RemoveSkills {
		ed.RemoveSkill(s)
	}

	if err := ed.Save(ctx); err != nil {
		writeError(c, err)
		return
	}

	st := ed.SaveStatus()
	c.JSON(http.StatusOK, profileResponse{Profile: ed.Profile(), Load: ed.LoadStatus(), Save: &st})
}
