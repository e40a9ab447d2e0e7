package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/futbol-backend-go/internal/models"
	"github.com/jengzang/futbol-backend-go/internal/render"
	"github.com/jengzang/futbol-backend-go/internal/selection"
	"github.com/jengzang/futbol-backend-go/internal/service"
	"github.com/jengzang/futbol-backend-go/pkg/response"
)

// SelectionTokenHeader carries a signed selection ticket
const SelectionTokenHeader = "X-Selection-Token"

// HeatmapHandler handles HTTP requests for player heat maps
type HeatmapHandler struct {
	service *service.HeatmapService
	tracker *selection.Tracker
	signer  *selection.TicketSigner
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(service *service.HeatmapService, tracker *selection.Tracker, signer *selection.TicketSigner) *HeatmapHandler {
	return &HeatmapHandler{service: service, tracker: tracker, signer: signer}
}

// Get handles GET /api/v1/players/:competition_id/:season_id/:player_id/heatmap
func (h *HeatmapHandler) Get(c *gin.Context) {
	resp, ok := h.build(c)
	if !ok {
		return
	}
	response.Success(c, resp)
}

// View handles GET /api/v1/players/:competition_id/:season_id/:player_id/heatmap/view
func (h *HeatmapHandler) View(c *gin.Context) {
	resp, ok := h.build(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.Page(&buf, resp); err != nil {
		response.InternalError(c, "Failed to render heat map", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// build resolves the heat map for the path selection, honouring a selection
// ticket when one is presented
func (h *HeatmapHandler) build(c *gin.Context) (*models.HeatmapResponse, bool) {
	sel, ok := selectionFromPath(c)
	if !ok {
		return nil, false
	}

	var filter models.HeatmapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return nil, false
	}

	token := c.GetHeader(SelectionTokenHeader)
	if token == "" {
		resp, err := h.service.Build(c.Request.Context(), sel, filter)
		if err != nil {
			writeError(c, "Failed to build heat map", err)
			return nil, false
		}
		return resp, true
	}

	ticket, err := h.signer.Parse(token)
	if err != nil {
		writeError(c, "Invalid selection token", err)
		return nil, false
	}
	if ticket.Selection != sel {
		response.BadRequest(c, "Selection token does not match the requested player",
			fmt.Errorf("%w: token is for player %d", selection.ErrInvalidTicket, ticket.Selection.PlayerID))
		return nil, false
	}

	sess, err := h.tracker.Get(ticket.SessionID)
	if err != nil {
		writeError(c, "Selection session expired", err)
		return nil, false
	}

	resp, err := h.service.BuildForTicket(c.Request.Context(), sess, ticket, filter)
	if err != nil {
		writeError(c, "Failed to build heat map", err)
		return nil, false
	}
	return resp, true
}

func selectionFromPath(c *gin.Context) (selection.Selection, bool) {
	var sel selection.Selection
	var ok bool
	if sel.CompetitionID, ok = parseIDParam(c, "competition_id"); !ok {
		return sel, false
	}
	if sel.SeasonID, ok = parseIDParam(c, "season_id"); !ok {
		return sel, false
	}
	if sel.PlayerID, ok = parseIDParam(c, "player_id"); !ok {
		return sel, false
	}
	return sel, true
}
