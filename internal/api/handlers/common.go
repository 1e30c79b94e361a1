package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jobboard/internal/api/middleware"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
	Detail  string     `json:"detail,omitempty"` // store message, when the failure came from it
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	_ = c.Error(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		body := APIError{Code: ae.Code, Message: ae.Message}
		if ae.Err != nil && ae.Code == utils.CodeUnavailable {
			body.Detail = utils.Cause(err)
		}
		c.JSON(status, body)
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func requireIdentity(c *gin.Context) (models.Identity, bool) {
	if id, ok := middleware.IdentityFrom(c); ok && id.UserID != "" {
		return id, true
	}

	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
	return models.Identity{}, false
}
