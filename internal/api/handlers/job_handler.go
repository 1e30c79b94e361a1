package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jobboard/internal/services"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

func (h *JobHandler) List(c *gin.Context) {
	rows, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": rows})
}

func (h *JobHandler) Get(c *gin.Context) {
	j, err := h.svc.Get(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *JobHandler) Companies(c *gin.Context) {
	rows, err := h.svc.ListCompanies(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": rows})
}
