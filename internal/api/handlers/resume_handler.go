package handlers

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jobboard/internal/services"
	"github.com/yoockh/jobboard/internal/utils"
)

const maxResumeSize = 10 << 20

type ResumeHandler struct {
	svc services.ResumeService
}

func NewResumeHandler(svc services.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// Upload accepts a multipart "file" field holding a PDF and points resume_url at it.
func (h *ResumeHandler) Upload(c *gin.Context) {
	const op = "ResumeHandler.Upload"

	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'file'", err))
		return
	}

	if ext := strings.ToLower(filepath.Ext(fh.Filename)); ext != ".pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "only .pdf is allowed", nil))
		return
	}
	if fh.Size <= 0 || fh.Size > maxResumeSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file must be between 1 byte and 10MB", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer file.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	head = head[:n]
	if ct := http.DetectContentType(head); ct != "application/pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid content type (must be pdf)", nil))
		return
	}

	p, err := h.svc.Upload(c.Request.Context(), id, io.MultiReader(bytes.NewReader(head), file))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
