package handlers

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

	"github.com/Dosada05/champion-league/feed"
	"github.com/Dosada05/champion-league/models"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

func TestWebSocketMatchFeed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := feed.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run(ctx)

	games := &fakeGameService{games: map[int]*models.Game{1: {ID: 1, Name: "Chess"}}}
	h := NewWebSocketHandler(hub, &fakeMatchService{matchFound: true}, games, []string{"*"})
	r := chi.NewRouter()
	r.Get("/ws/matches/{matchID}", h.ServeMatch)
	r.Get("/ws/games/{gameID}", h.ServeGame)

	srv := httptest.NewServer(r)
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"/ws/matches/7", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	room := feed.MatchRoom(7)
	deadline := time.Now().Add(2 * time.Second)
	for hub.RoomSize(room) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client was not registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.PublishMatch(7, 1, feed.MessageMatchUpdated, map[string]int{"id": 7})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]int `json:"payload"`
		RoomID  string         `json:"room_id"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("message is not JSON: %v", err)
	}
	if msg.Type != feed.MessageMatchUpdated || msg.Payload["id"] != 7 || msg.RoomID != room {
		t.Errorf("message = %+v", msg)
	}
}

func TestWebSocketUnknownTarget(t *testing.T) {
	hub := feed.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	h := NewWebSocketHandler(hub, &fakeMatchService{}, &fakeGameService{}, nil)
	r := chi.NewRouter()
	r.Get("/ws/matches/{matchID}", h.ServeMatch)
	r.Get("/ws/games/{gameID}", h.ServeGame)

	for _, path := range []string{"/ws/matches/7", "/ws/games/3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, rec.Code)
		}
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://league.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/ws/games/1", nil)
	if !check(req) {
		t.Error("request without Origin should pass")
	}
	req.Header.Set("Origin", "https://league.example.com")
	if !check(req) {
		t.Error("allowed origin rejected")
	}
	req.Header.Set("Origin", "https://evil.example.com")
	if check(req) {
		t.Error("foreign origin accepted")
	}
}
