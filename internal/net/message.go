// Package net relays board edits between sessions on a local network:
// a websocket hub on the host, a client per joined board, and mDNS
// discovery of running hosts.
package net

import "inkboard/internal/state"

// WebSocket endpoint path served by the hub.
const EndpointPath = "/ws"

// Message is the wire envelope. Every payload is a Lamport-stamped op.
type Message struct {
	Type string    `json:"type"`
	Op   *state.Op `json:"op,omitempty"`
}

const msgTypeOp = "op"

// NewOpMessage wraps op for transmission.
func NewOpMessage(op state.Op) Message {
	return Message{Type: msgTypeOp, Op: &op}
}
