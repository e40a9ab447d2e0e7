package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/futbol-backend-go/internal/models"
	"github.com/jengzang/futbol-backend-go/internal/service"
	"github.com/jengzang/futbol-backend-go/pkg/response"
)

// MatchHandler handles HTTP requests for matches
type MatchHandler struct {
	service *service.MatchService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(service *service.MatchService) *MatchHandler {
	return &MatchHandler{service: service}
}

// List handles GET /api/v1/matches
func (h *MatchHandler) List(c *gin.Context) {
	var filter models.MatchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	h.list(c, filter)
}

// ListForSeason handles GET /api/v1/competitions/:competition_id/seasons/:season_id/matches
func (h *MatchHandler) ListForSeason(c *gin.Context) {
	var filter models.MatchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	var ok bool
	if filter.CompetitionID, ok = parseIDParam(c, "competition_id"); !ok {
		return
	}
	if filter.SeasonID, ok = parseIDParam(c, "season_id"); !ok {
		return
	}
	h.list(c, filter)
}

func (h *MatchHandler) list(c *gin.Context, filter models.MatchFilter) {
	matches, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, "Failed to get matches", err)
		return
	}

	response.Success(c, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// Get handles GET /api/v1/matches/:match_id
func (h *MatchHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "match_id")
	if !ok {
		return
	}

	match, err := h.service.Get(id)
	if err != nil {
		writeError(c, "Match not found", err)
		return
	}
	response.Success(c, match)
}
