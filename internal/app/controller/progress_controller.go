package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jteo/listify-backend/internal/errors"
	"github.com/jteo/listify-backend/internal/middleware"

	ws "github.com/jteo/listify-backend/internal/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Sessions are anonymous and the feed is read-only, so any
		// origin may subscribe.
		return true
	},
}

// ProgressController serves the live progress feed.
type ProgressController struct {
	hub *ws.Hub
}

func NewProgressController(hub *ws.Hub) *ProgressController {
	return &ProgressController{hub: hub}
}

// Feed upgrades the connection and streams progress snapshots for the
// caller's session.
// GET /api/v1/wizard/progress/feed
func (ctrl *ProgressController) Feed(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		errors.RespondWithError(c, http.StatusUnauthorized, errors.SessionMissing, "No wizard session")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("Failed to upgrade to WebSocket", err, nil)
		return
	}

	client := &ws.Client{
		Hub:       ctrl.hub,
		Conn:      &ws.Conn{Conn: conn},
		SessionID: sessionID,
		Send:      make(chan []byte, 256),
	}

	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	log.Info("Progress feed connected", map[string]interface{}{
		"session_id": sessionID,
	})
}
