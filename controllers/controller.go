package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Avadhut20/roxiler/pkg/resp"
	"github.com/Avadhut20/roxiler/services"
)

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
