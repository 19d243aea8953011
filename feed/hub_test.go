package feed

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub
}

func dial(t *testing.T, hub *Hub, room string) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		NewClient(hub, conn, room).Serve()
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForRoom(t *testing.T, hub *Hub, room string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.RoomSize(room) != n {
		if time.Now().After(deadline) {
			t.Fatalf("room %s has %d clients, want %d", room, hub.RoomSize(room), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestPublishMatchReachesMatchAndGameRooms(t *testing.T) {
	hub := newTestHub(t)
	matchConn := dial(t, hub, MatchRoom(7))
	gameConn := dial(t, hub, GameRoom(3))
	otherConn := dial(t, hub, GameRoom(4))
	waitForRoom(t, hub, MatchRoom(7), 1)
	waitForRoom(t, hub, GameRoom(3), 1)
	waitForRoom(t, hub, GameRoom(4), 1)

	hub.PublishMatch(7, 3, MessageMatchUpdated, map[string]int{"id": 7})

	for _, tc := range []struct {
		conn *websocket.Conn
		room string
	}{{matchConn, "match_7"}, {gameConn, "game_3"}} {
		_ = tc.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := tc.conn.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage(%s) error = %v", tc.room, err)
		}
		var msg struct {
			Type    string         `json:"type"`
			Payload map[string]int `json:"payload"`
			RoomID  string         `json:"room_id"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("invalid message %s: %v", data, err)
		}
		if msg.Type != MessageMatchUpdated || msg.RoomID != tc.room || msg.Payload["id"] != 7 {
			t.Errorf("message = %+v, want MATCH_UPDATED for %s", msg, tc.room)
		}
	}

	_ = otherConn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := otherConn.ReadMessage(); err == nil {
		t.Error("unrelated room received a message")
	}
}

func TestClientUnregistersOnClose(t *testing.T) {
	hub := newTestHub(t)
	conn := dial(t, hub, MatchRoom(1))
	waitForRoom(t, hub, MatchRoom(1), 1)

	conn.Close()
	waitForRoom(t, hub, MatchRoom(1), 0)
}
