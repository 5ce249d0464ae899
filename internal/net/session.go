package net

import (
	"sync"

	"github.com/google/uuid"

	"inkboard/internal/board"
	"inkboard/internal/logger"
	"inkboard/internal/state"
)

// Session ties a board to a transport: local commits become
// Lamport-stamped ops, remote ops are deduplicated and applied.
type Session struct {
	log   *logger.Logger
	site  string
	clock state.Clock
	send  func(Message)

	mu   sync.Mutex
	seen map[string]bool
}

func newSession(send func(Message), log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		log:  log.WithComponent("session"),
		site: uuid.NewString(),
		send: send,
		seen: make(map[string]bool),
	}
}

// NewHostSession binds the hub side: edits from clients are applied to
// the host board (the hub relays them to the other clients itself), and
// the host's own edits are broadcast to everyone.
func NewHostSession(b *board.Board, hub *Hub, log *logger.Logger) *Session {
	s := newSession(hub.Broadcast, log)
	hub.OnMessage = func(msg Message) { s.handleRemote(b, msg) }
	s.bind(b)
	return s
}

// NewClientSession binds the joined side: local edits go to the host,
// relayed edits come back through the client connection.
func NewClientSession(b *board.Board, c *Client, log *logger.Logger) *Session {
	// The send closure runs only after the assignment below, so the late
	// binding of s is safe.
	var s *Session
	s = newSession(func(msg Message) {
		if err := c.Send(msg); err != nil {
			s.log.Warn("send failed: " + err.Error())
		}
	}, log)
	c.OnMessage = func(msg Message) { s.handleRemote(b, msg) }
	s.bind(b)
	return s
}

// Site returns the session's unique site ID.
func (s *Session) Site() string {
	return s.site
}

func (s *Session) bind(b *board.Board) {
	b.SetStrokeHook(func(st state.Stroke) {
		s.markSeen(st.ID)
		s.send(NewOpMessage(state.Op{
			Type:    state.OpInsertStroke,
			Stroke:  &st,
			Lamport: s.clock.Tick(),
			Site:    s.site,
		}))
	})
	b.SetClearHook(func() {
		s.send(NewOpMessage(state.Op{
			Type:    state.OpClear,
			Owner:   s.site,
			Lamport: s.clock.Tick(),
			Site:    s.site,
		}))
	})
}

func (s *Session) handleRemote(b *board.Board, msg Message) {
	op := msg.Op
	if op == nil || op.Site == s.site {
		return
	}
	s.clock.Observe(op.Lamport)
	if op.Type == state.OpInsertStroke {
		if op.Stroke == nil || !s.markSeen(op.Stroke.ID) {
			return
		}
	}
	b.ApplyRemote(*op)
}

// markSeen records id and reports whether it was new.
func (s *Session) markSeen(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[id] {
		return false
	}
	s.seen[id] = true
	return true
}
