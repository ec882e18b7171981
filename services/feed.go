package services

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/boetepot/boetepot-backend/models"
	"github.com/boetepot/boetepot-backend/utils/logger"
)

// Event types pushed over the live feed.
const (
	EventFineCreated = "fine.created"
	EventFineDeleted = "fine.deleted"
	EventReset       = "pot.reset"
)

// Event is one live feed message. Fine is set for create/delete events.
type Event struct {
	Type string               `json:"type"`
	Fine *models.EnrichedFine `json:"fine,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Feed pushes fine events to connected websocket clients, so a club display
// screen updates without polling.
type Feed struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewFeed() *Feed {
	return &Feed{clients: make(map[*Client]struct{})}
}

// HandleWebSocket upgrades the request and registers the client on the feed.
func (f *Feed) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("websocket upgrade error: %v", err)
		return
	}

	client := &Client{
		feed: f,
		conn: conn,
		send: make(chan []byte, 32),
	}
	f.addClient(client)
	logger.Debugf("feed client connected: %s", conn.RemoteAddr())

	go client.writePump()
	go client.readPump()
}

// Broadcast sends an event to every connected client. Clients whose send
// buffer is full are dropped rather than blocking the caller.
func (f *Feed) Broadcast(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		logger.Errorf("feed marshal error: %v", err)
		return
	}

	f.mu.RLock()
	clients := make([]*Client, 0, len(f.clients))
	for client := range f.clients {
		clients = append(clients, client)
	}
	f.mu.RUnlock()

	for _, client := range clients {
		if !client.trySend(msg) {
			f.removeClient(client)
		}
	}
}

// ClientCount reports how many clients are currently subscribed.
func (f *Feed) ClientCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.clients)
}

func (f *Feed) addClient(client *Client) {
	f.mu.Lock()
	f.clients[client] = struct{}{}
	f.mu.Unlock()
}

func (f *Feed) removeClient(client *Client) {
	f.mu.Lock()
	delete(f.clients, client)
	f.mu.Unlock()

	client.Close()
}
