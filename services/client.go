package services

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/boetepot/boetepot-backend/utils/logger"
)

// Client is one websocket subscriber on the feed. The feed is one-way:
// incoming messages are drained and discarded.
type Client struct {
	feed *Feed
	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

// trySend queues a message for the client. It reports false when the client
// is already closed or its buffer is full. The closed flag and the channel
// close happen under the same mutex, so a concurrent Close can never turn
// this send into a panic.
func (c *Client) trySend(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// Close is idempotent and safe to call while a broadcast is in flight.
func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	c.mu.Unlock()

	c.conn.Close()
}

func (c *Client) readPump() {
	defer c.feed.removeClient(c)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("feed client disconnected: %s", c.conn.RemoteAddr())
			} else {
				logger.Debugf("feed client read error: %v", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debugf("feed client write error: %v", err)
			return
		}
	}
}
