package net

import (
	"sync"

	"github.com/gorilla/websocket"

	"inkboard/internal/logger"
)

// Client is the joined side of a session: one websocket to the host.
type Client struct {
	log *logger.Logger
	ws  *websocket.Conn
	mu  sync.Mutex

	// OnMessage receives every message relayed by the host. Set before
	// calling Listen.
	OnMessage func(Message)

	// OnDisconnect fires once when the read loop ends.
	OnDisconnect func(error)
}

// Dial connects to a host's websocket endpoint. addr is host:port.
func Dial(addr string, log *logger.Logger) (*Client, error) {
	if log == nil {
		log = logger.Nop()
	}
	ws, _, err := websocket.DefaultDialer.Dial("ws://"+addr+EndpointPath, nil)
	if err != nil {
		return nil, err
	}
	return &Client{log: log.WithComponent("client"), ws: ws}, nil
}

// Send transmits msg to the host.
func (c *Client) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(msg)
}

// Listen pumps messages until the connection drops. Run on its own
// goroutine.
func (c *Client) Listen() {
	var err error
	for {
		var msg Message
		if err = c.ws.ReadJSON(&msg); err != nil {
			break
		}
		if c.OnMessage != nil {
			c.OnMessage(msg)
		}
	}
	c.log.Debug("connection closed: " + err.Error())
	if c.OnDisconnect != nil {
		c.OnDisconnect(err)
	}
}

// Close shuts the connection down.
func (c *Client) Close() error {
	return c.ws.Close()
}
