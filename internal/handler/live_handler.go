package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/jengzang/futbol-backend-go/internal/models"
	"github.com/jengzang/futbol-backend-go/internal/selection"
	"github.com/jengzang/futbol-backend-go/internal/service"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4 * 1024
	sendBuffer     = 8
)

// Live message types
const (
	LiveMsgHello   = "hello"
	LiveMsgSelect  = "select"
	LiveMsgHeatmap = "heatmap"
	LiveMsgError   = "error"
	LiveMsgPing    = "ping"
	LiveMsgPong    = "pong"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Host == r.Host
	},
}

// LiveRequest is a message from the browser
type LiveRequest struct {
	Type string `json:"type"`
	selection.Selection
	models.HeatmapFilter
}

// LiveMessage is a message to the browser
type LiveMessage struct {
	Type       string                  `json:"type"`
	SessionID  string                  `json:"session_id,omitempty"`
	Generation uint64                  `json:"generation,omitempty"`
	Heatmap    *models.HeatmapResponse `json:"heatmap,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// LiveHandler serves the websocket live session. Each connection owns one
// selection session; only the latest selection's heat map is delivered.
type LiveHandler struct {
	service *service.HeatmapService
	tracker *selection.Tracker
}

// NewLiveHandler creates a new live handler
func NewLiveHandler(service *service.HeatmapService, tracker *selection.Tracker) *LiveHandler {
	return &LiveHandler{service: service, tracker: tracker}
}

// Serve handles GET /api/v1/live
func (h *LiveHandler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[LiveHandler] Upgrade failed: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	client := &liveClient{
		handler: h,
		conn:    conn,
		sess:    h.tracker.Open(""),
		send:    make(chan LiveMessage, sendBuffer),
		ctx:     ctx,
		cancel:  cancel,
	}

	go client.writePump()
	client.enqueue(LiveMessage{Type: LiveMsgHello, SessionID: client.sess.ID})
	client.readPump()
}

type liveClient struct {
	handler *LiveHandler
	conn    *websocket.Conn
	sess    *selection.Session
	send    chan LiveMessage

	// ctx ends when the reader stops
	ctx    context.Context
	cancel context.CancelFunc
}

// readPump handles browser messages. Loads run in their own goroutines so a
// slow load never blocks the next selection.
func (c *liveClient) readPump() {
	defer func() {
		c.cancel()
		c.handler.tracker.Remove(c.sess.ID)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		var req LiveRequest
		if err := c.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[LiveHandler] Session %s read error: %v", c.sess.ID, err)
			}
			return
		}

		switch req.Type {
		case LiveMsgSelect:
			if err := req.Selection.Validate(); err != nil {
				c.enqueue(LiveMessage{Type: LiveMsgError, Error: err.Error()})
				continue
			}
			ticket := c.sess.Select(req.Selection)
			go c.load(ticket, req.HeatmapFilter)
		case LiveMsgPing:
			c.enqueue(LiveMessage{Type: LiveMsgPong})
		default:
			c.enqueue(LiveMessage{Type: LiveMsgError, Error: "unknown message type: " + req.Type})
		}
	}
}

func (c *liveClient) load(ticket selection.Ticket, filter models.HeatmapFilter) {
	resp, err := c.handler.service.BuildForTicket(c.ctx, c.sess, ticket, filter)
	if errors.Is(err, selection.ErrStaleSelection) || c.ctx.Err() != nil {
		return
	}

	msg := LiveMessage{Type: LiveMsgHeatmap, Generation: ticket.Generation, Heatmap: resp}
	if err != nil {
		msg = LiveMessage{Type: LiveMsgError, Generation: ticket.Generation, Error: err.Error()}
	}
	c.enqueue(msg)
}

// enqueue hands msg to the writer unless the connection is closing
func (c *liveClient) enqueue(msg LiveMessage) {
	select {
	case c.send <- msg:
	case <-c.ctx.Done():
	}
}

// writePump writes queued messages, dropping results of superseded
// generations, and keeps the connection alive with pings
func (c *liveClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.ctx.Done():
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case msg := <-c.send:
			if msg.Generation != 0 && !c.sess.IsCurrent(msg.Generation) {
				continue
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.cancel()
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.cancel()
				return
			}
		}
	}
}
