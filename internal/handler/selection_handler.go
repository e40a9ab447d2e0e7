package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/futbol-backend-go/internal/selection"
	"github.com/jengzang/futbol-backend-go/pkg/response"
)

// SelectionHandler issues selection tickets
type SelectionHandler struct {
	tracker *selection.Tracker
	signer  *selection.TicketSigner
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(tracker *selection.Tracker, signer *selection.TicketSigner) *SelectionHandler {
	return &SelectionHandler{tracker: tracker, signer: signer}
}

// SelectRequest represents the request body for a player selection
type SelectRequest struct {
	SessionID string `json:"session_id"` // Omit to open a new session
	selection.Selection
}

// TicketResponse is returned for every accepted selection
type TicketResponse struct {
	SessionID  string              `json:"session_id"`
	Generation uint64              `json:"generation"`
	Selection  selection.Selection `json:"selection"`
	Token      string              `json:"token"`
}

// Select handles POST /api/v1/selections. The new selection supersedes the
// session's previous one; loads bound to older tickets are cancelled.
func (h *SelectionHandler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ticket, err := h.tracker.Select(req.SessionID, req.Selection)
	if err != nil {
		response.BadRequest(c, "Invalid selection", err)
		return
	}

	token, err := h.signer.Sign(ticket)
	if err != nil {
		response.InternalError(c, "Failed to issue selection token", err)
		return
	}

	response.Created(c, TicketResponse{
		SessionID:  ticket.SessionID,
		Generation: ticket.Generation,
		Selection:  ticket.Selection,
		Token:      token,
	})
}
