package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/futbol-backend-go/internal/service"
	"github.com/jengzang/futbol-backend-go/pkg/response"
)

// CompetitionHandler handles HTTP requests for competitions
type CompetitionHandler struct {
	service *service.CompetitionService
}

// NewCompetitionHandler creates a new competition handler
func NewCompetitionHandler(service *service.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{service: service}
}

type competitionQuery struct {
	Grouped bool `form:"grouped"`
}

type seasonsQuery struct {
	CompetitionID int64 `form:"competition_id" binding:"required"`
}

// List handles GET /api/v1/competitions
func (h *CompetitionHandler) List(c *gin.Context) {
	var q competitionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	if q.Grouped {
		comps, err := h.service.ListGrouped(c.Request.Context())
		if err != nil {
			writeError(c, "Failed to get competitions", err)
			return
		}
		response.Success(c, comps)
		return
	}

	comps, err := h.service.ListFlat(c.Request.Context())
	if err != nil {
		writeError(c, "Failed to get competitions", err)
		return
	}
	response.Success(c, comps)
}

// Seasons handles GET /api/v1/competitions/seasons
func (h *CompetitionHandler) Seasons(c *gin.Context) {
	var q seasonsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "competition_id is required", err)
		return
	}

	seasons, err := h.service.Seasons(c.Request.Context(), q.CompetitionID)
	if err != nil {
		writeError(c, "Competition not found", err)
		return
	}
	response.Success(c, seasons)
}
