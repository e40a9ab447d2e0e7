package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/futbol-backend-go/internal/repository"
	"github.com/jengzang/futbol-backend-go/internal/selection"
	"github.com/jengzang/futbol-backend-go/internal/service"
	"github.com/jengzang/futbol-backend-go/pkg/response"
)

// parseIDParam reads a positive integer path parameter, writing a 400 on failure
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// writeError maps service and storage errors onto HTTP statuses
func writeError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, message, err)
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, message, err)
	case errors.Is(err, selection.ErrInvalidTicket):
		response.BadRequest(c, message, err)
	case errors.Is(err, selection.ErrStaleSelection), errors.Is(err, selection.ErrUnknownSession):
		response.Conflict(c, message, err)
	case errors.Is(err, context.Canceled):
		response.Error(c, http.StatusServiceUnavailable, message, err)
	default:
		response.InternalError(c, message, err)
	}
}
