package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/services"
	"github.com/yoockh/jobboard/internal/utils"
	"github.com/yoockh/jobboard/internal/workflows"
)

type ApplicationHandler struct {
	svc services.ApplicationService
	log logrus.FieldLogger
}

func NewApplicationHandler(svc services.ApplicationService, log logrus.FieldLogger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: log}
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type applyResponse struct {
	Application *models.Application    `json:"application"`
	Status      workflows.SubmitStatus `json:"status"`
}

// Apply submits one application for :job_id. Submitting twice creates two.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req ApplyRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Apply", "invalid request body", err))
			return
		}
	}

	form := workflows.NewApplicationForm(h.svc, c.Param("job_id"), id.UserID, h.log)
	form.SetCoverLetter(req.CoverLetter)

	app, err := form.Submit(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, applyResponse{Application: app, Status: form.Status()})
}

func (h *ApplicationHandler) Mine(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	rows, err := h.svc.ListMine(c.Request.Context(), id.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": rows})
}
