package net

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"inkboard/internal/logger"
)

// conn wraps a websocket connection with a write lock, since gorilla
// allows only one concurrent writer per connection.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(msg)
}

// Hub is the host-side relay: it accepts websocket clients, hands every
// incoming message to OnMessage, and broadcasts to the rest.
type Hub struct {
	log      *logger.Logger
	upgrader websocket.Upgrader

	// OnMessage observes every message arriving from any client, before
	// the hub relays it. Set before serving.
	OnMessage func(Message)

	mu    sync.RWMutex
	conns map[*conn]bool
}

func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.Nop()
	}
	return &Hub{
		log:   log.WithComponent("hub"),
		conns: make(map[*conn]bool),
		upgrader: websocket.Upgrader{
			// LAN tool: peers connect straight to the host's IP.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and pumps messages until the client
// disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error(err, "websocket upgrade failed")
		return
	}
	c := &conn{ws: ws}
	h.add(c)
	defer h.remove(c)

	for {
		var msg Message
		if err := ws.ReadJSON(&msg); err != nil {
			h.log.Debug("client disconnected: " + err.Error())
			return
		}
		if h.OnMessage != nil {
			h.OnMessage(msg)
		}
		h.broadcast(msg, c)
	}
}

// Broadcast sends msg to every connected client. Used for edits that
// originate on the host itself.
func (h *Hub) Broadcast(msg Message) {
	h.broadcast(msg, nil)
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) add(c *conn) {
	h.mu.Lock()
	h.conns[c] = true
	h.mu.Unlock()
	h.log.Info("client connected: " + c.ws.RemoteAddr().String())
}

func (h *Hub) remove(c *conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
	c.ws.Close()
	h.log.Info("client removed: " + c.ws.RemoteAddr().String())
}

func (h *Hub) broadcast(msg Message, exclude *conn) {
	h.mu.RLock()
	targets := make([]*conn, 0, len(h.conns))
	for c := range h.conns {
		if c != exclude {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(msg); err != nil {
			h.log.Warn("send to " + c.ws.RemoteAddr().String() + " failed: " + err.Error())
		}
	}
}
