package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

// connection is one live socket for a signed-in profile.
type connection struct {
	profileID string
	conn      *websocket.Conn
	send      chan []byte
}

// ======================================================
// HUB
// ======================================================

// Hub tracks at most one socket per profile. A reconnect replaces the
// previous socket.
type Hub struct {
	mu          sync.RWMutex
	connections map[string]*connection
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*connection),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	prev, ok := h.connections[c.profileID]
	h.connections[c.profileID] = c
	h.mu.Unlock()

	if ok {
		prev.conn.Close()
	}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[c.profileID]; ok && existing == c {
		delete(h.connections, c.profileID)
		close(c.send)
	}
}

// SendToProfile pushes an event to the profile's socket if it is online.
// Returns false when the profile has no connection or its buffer is full.
func (h *Hub) SendToProfile(profileID string, event any) bool {
	data, err := json.Marshal(event)
	if err != nil {
		return false
	}

	h.mu.RLock()
	c, ok := h.connections[profileID]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	select {
	case c.send <- data:
		return true
	default:
		// slow consumer, drop the event
		return false
	}
}

// Online reports whether the profile currently has a socket.
func (h *Hub) Online(profileID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.connections[profileID]
	return ok
}

// ======================================================
// PUMPS
// ======================================================

// ServeWS registers the socket and blocks until it disconnects.
func (h *Hub) ServeWS(conn *websocket.Conn, profileID string) {
	c := &connection{
		profileID: profileID,
		conn:      conn,
		send:      make(chan []byte, 256),
	}

	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				log.Printf("websocket error for profile %s: %v", c.profileID, err)
			}
			return
		}
		// clients only listen; inbound frames are ignored
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
