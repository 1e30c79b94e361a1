package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jobboard/internal/services"
)

type SeedHandler struct {
	svc services.SeedService
}

func NewSeedHandler(svc services.SeedService) *SeedHandler {
	return &SeedHandler{svc: svc}
}

// Health reports whether the data store answers a one-row read.
func (h *SeedHandler) Health(c *gin.Context) {
	if !h.svc.ConnectionCheck(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"connected": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"connected": true})
}

func (h *SeedHandler) Seed(c *gin.Context) {
	res, err := h.svc.Seed(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
