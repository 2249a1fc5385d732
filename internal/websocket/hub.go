package websocket

import (
	"encoding/json"
	"sync"

	"github.com/jteo/listify-backend/internal/app/service"
	"github.com/jteo/listify-backend/pkg/logger"
)

// Client is one open progress-feed connection.
type Client struct {
	Hub       *Hub
	Conn      *Conn
	SessionID string
	Send      chan []byte
}

// Hub fans progress snapshots out to the connections of each wizard
// session. A session may hold several connections (multiple tabs); all
// of them receive every update.
type Hub struct {
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan *progressUpdate

	mu sync.RWMutex
}

type progressUpdate struct {
	SessionID string
	Message   []byte
}

// progressEvent is the wire shape of one update.
type progressEvent struct {
	Type     string                   `json:"type"`
	Progress service.ProgressSnapshot `json:"progress"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string][]*Client),
		register:   make(chan *Client, 256),
		unregister: make(chan *Client, 256),
		broadcast:  make(chan *progressUpdate, 1024),
	}
}

// Run processes registrations and fan-out. Call once from a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			logger.Debug("Progress feed client registered", map[string]interface{}{
				"session_id": client.SessionID,
			})

		case client := <-h.unregister:
			// Both pumps and the full-buffer path can request the same
			// unregister; only the one that actually removes the client
			// may close its channel.
			removed := false
			h.mu.Lock()
			if clientList, ok := h.clients[client.SessionID]; ok {
				newList := make([]*Client, 0, len(clientList))
				for _, c := range clientList {
					if c == client {
						removed = true
						continue
					}
					newList = append(newList, c)
				}
				if removed {
					if len(newList) == 0 {
						delete(h.clients, client.SessionID)
					} else {
						h.clients[client.SessionID] = newList
					}
					close(client.Send)
				}
			}
			h.mu.Unlock()
			if removed {
				logger.Debug("Progress feed client unregistered", map[string]interface{}{
					"session_id": client.SessionID,
				})
			}

		case update := <-h.broadcast:
			h.mu.RLock()
			if clientList, ok := h.clients[update.SessionID]; ok {
				for _, client := range clientList {
					select {
					case client.Send <- update.Message:
					default:
						// Send buffer full; drop the connection, not the hub.
						go h.Unregister(client)
						logger.Warn("Client send buffer full, disconnecting", map[string]interface{}{
							"session_id": update.SessionID,
						})
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// NotifyProgress implements service.ProgressNotifier. Updates to
// sessions with no open connections are dropped silently.
func (h *Hub) NotifyProgress(sessionID string, snapshot service.ProgressSnapshot) {
	data, err := json.Marshal(progressEvent{
		Type:     "progress",
		Progress: snapshot,
	})
	if err != nil {
		logger.Error("Failed to marshal progress event", err, nil)
		return
	}

	select {
	case h.broadcast <- &progressUpdate{SessionID: sessionID, Message: data}:
	default:
		// Losing a snapshot is fine; the next save sends a fresh one.
		logger.Warn("Broadcast channel full, progress update dropped", map[string]interface{}{
			"session_id": sessionID,
		})
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// IsSessionConnected reports whether the session has any open feed.
func (h *Hub) IsSessionConnected(sessionID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[sessionID]
	return ok
}
