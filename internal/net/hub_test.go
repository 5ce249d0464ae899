package net

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkboard/internal/board"
	"inkboard/internal/geom"
	"inkboard/internal/state"
)

func dialRaw(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + EndpointPath
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func testOp(id string) state.Op {
	return state.Op{
		Type: state.OpInsertStroke,
		Stroke: &state.Stroke{
			ID:     id,
			Points: []geom.Point{{X: 1, Y: 2}},
			Color:  "#000000",
			Width:  2,
			Tool:   state.ToolBrush,
		},
		Lamport: 1,
		Site:    "site-a",
	}
}

func TestHubRelaysToOtherClientsOnly(t *testing.T) {
	hub := NewHub(nil)
	var mu sync.Mutex
	var observed []Message
	hub.OnMessage = func(msg Message) {
		mu.Lock()
		observed = append(observed, msg)
		mu.Unlock()
	}

	srv := httptest.NewServer(hub)
	defer srv.Close()

	a := dialRaw(t, srv)
	b := dialRaw(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 },
		time.Second, 5*time.Millisecond)

	require.NoError(t, a.WriteJSON(NewOpMessage(testOp("s1"))))

	var got Message
	require.NoError(t, b.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, b.ReadJSON(&got))
	require.NotNil(t, got.Op)
	assert.Equal(t, "s1", got.Op.Stroke.ID)

	// The sender must not receive its own message back.
	require.NoError(t, a.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	var echo Message
	assert.Error(t, a.ReadJSON(&echo))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, observed, 1)
	assert.Equal(t, "site-a", observed[0].Op.Site)
}

func TestHubBroadcastReachesEveryClient(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	a := dialRaw(t, srv)
	b := dialRaw(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 },
		time.Second, 5*time.Millisecond)

	hub.Broadcast(NewOpMessage(testOp("s2")))

	for _, ws := range []*websocket.Conn{a, b} {
		var got Message
		require.NoError(t, ws.SetReadDeadline(time.Now().Add(time.Second)))
		require.NoError(t, ws.ReadJSON(&got))
		assert.Equal(t, "s2", got.Op.Stroke.ID)
	}
}

func TestHubDropsDisconnectedClients(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	a := dialRaw(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 5*time.Millisecond)

	a.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		time.Second, 5*time.Millisecond)
}

func drawOn(b *board.Board, x, y float32) {
	now := time.Now()
	b.PointerDown(geom.PointerEvent{PointerID: 1, ClientX: x, ClientY: y, Time: now})
	b.PointerUp(geom.PointerEvent{PointerID: 1, ClientX: x, ClientY: y, Time: now})
}

func strokeCount(b *board.Board) func() bool {
	return func() bool { return len(b.History().Strokes) > 0 }
}

func TestSessionEndToEnd(t *testing.T) {
	hostBoard := board.New(board.Options{Width: 32, Height: 32})
	defer hostBoard.Close()
	clientBoard := board.New(board.Options{Width: 32, Height: 32})
	defer clientBoard.Close()

	hub := NewHub(nil)
	hostSess := NewHostSession(hostBoard, hub, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	addr := strings.TrimPrefix(srv.URL, "http://")
	client, err := Dial(addr, nil)
	require.NoError(t, err)
	defer client.Close()
	clientSess := NewClientSession(clientBoard, client, nil)
	go client.Listen()

	assert.NotEqual(t, hostSess.Site(), clientSess.Site())

	// Client draws; the host applies the op.
	drawOn(clientBoard, 5, 5)
	require.Eventually(t, strokeCount(hostBoard), 2*time.Second, 10*time.Millisecond)
	require.Len(t, hostBoard.History().Strokes, 1)
	assert.Equal(t, clientBoard.History().Strokes[0].ID, hostBoard.History().Strokes[0].ID)

	// Host draws; the client receives the relayed op.
	drawOn(hostBoard, 10, 10)
	require.Eventually(t, func() bool { return len(clientBoard.History().Strokes) == 2 },
		2*time.Second, 10*time.Millisecond)

	// Client clears; the host board empties.
	clientBoard.Clear()
	require.Eventually(t, func() bool { return len(hostBoard.History().Strokes) == 0 },
		2*time.Second, 10*time.Millisecond)
}

func TestClientSessionForwardsLocalEdits(t *testing.T) {
	hub := NewHub(nil)
	var mu sync.Mutex
	var got []Message
	hub.OnMessage = func(msg Message) {
		mu.Lock()
		got = append(got, msg)
		mu.Unlock()
	}
	srv := httptest.NewServer(hub)
	defer srv.Close()

	b := board.New(board.Options{Width: 32, Height: 32})
	defer b.Close()
	client, err := Dial(strings.TrimPrefix(srv.URL, "http://"), nil)
	require.NoError(t, err)
	defer client.Close()
	sess := NewClientSession(b, client, nil)
	go client.Listen()

	drawOn(b, 5, 5)
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, got[0].Op)
	assert.Equal(t, state.OpInsertStroke, got[0].Op.Type)
	assert.Equal(t, sess.Site(), got[0].Op.Site)
}

func TestSessionIgnoresOwnOps(t *testing.T) {
	b := board.New(board.Options{Width: 32, Height: 32})
	defer b.Close()

	var sent []Message
	s := newSession(func(msg Message) { sent = append(sent, msg) }, nil)
	s.bind(b)

	drawOn(b, 5, 5)
	require.Len(t, sent, 1)
	require.Len(t, b.History().Strokes, 1)

	// An op stamped with our own site must not be applied again.
	s.handleRemote(b, sent[0])
	assert.Len(t, b.History().Strokes, 1)
}

func TestSessionDeduplicatesReplayedOps(t *testing.T) {
	b := board.New(board.Options{Width: 32, Height: 32})
	defer b.Close()

	s := newSession(func(Message) {}, nil)
	s.bind(b)

	msg := NewOpMessage(testOp("replayed"))
	s.handleRemote(b, msg)
	s.handleRemote(b, msg)
	assert.Len(t, b.History().Strokes, 1)
}

func TestSessionObservesRemoteClock(t *testing.T) {
	b := board.New(board.Options{Width: 32, Height: 32})
	defer b.Close()

	var sent []Message
	s := newSession(func(msg Message) { sent = append(sent, msg) }, nil)
	s.bind(b)

	op := testOp("remote")
	op.Lamport = 40
	s.handleRemote(b, NewOpMessage(op))

	drawOn(b, 5, 5)
	require.Len(t, sent, 1)
	assert.Greater(t, sent[0].Op.Lamport, uint64(40))
}
