package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/futbol-backend-go/internal/service"
	"github.com/jengzang/futbol-backend-go/pkg/response"
)

// PlayerHandler handles HTTP requests for players
type PlayerHandler struct {
	service *service.PlayerService
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(service *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// List handles GET /api/v1/players/:competition_id/:season_id
func (h *PlayerHandler) List(c *gin.Context) {
	compID, ok := parseIDParam(c, "competition_id")
	if !ok {
		return
	}
	seasonID, ok := parseIDParam(c, "season_id")
	if !ok {
		return
	}

	players, err := h.service.List(c.Request.Context(), compID, seasonID)
	if err != nil {
		writeError(c, "Failed to get players", err)
		return
	}

	response.Success(c, gin.H{
		"players": players,
		"count":   len(players),
	})
}
