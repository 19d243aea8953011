package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/champion-league/feed"
	"github.com/Dosada05/champion-league/services"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub          *feed.Hub
	upgrader     websocket.Upgrader
	matchService services.MatchService
	gameService  services.GameService
}

// NewWebSocketHandler создаёт обработчик подписок. Пустой allowedOrigins или "*"
// разрешает любой Origin.
func NewWebSocketHandler(hub *feed.Hub, ms services.MatchService, gs services.GameService, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		hub:          hub,
		matchService: ms,
		gameService:  gs,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = true
	}
	if len(set) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || set[origin]
	}
}

// ServeMatch подписывает клиента на события одного матча: /ws/matches/{matchID}.
func (h *WebSocketHandler) ServeMatch(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if _, err := h.matchService.GetMatchByID(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.serve(w, r, feed.MatchRoom(id))
}

// ServeGame подписывает клиента на все матчи игры: /ws/games/{gameID}.
func (h *WebSocketHandler) ServeGame(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if _, err := h.gameService.GetGameByID(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.serve(w, r, feed.GameRoom(id))
}

func (h *WebSocketHandler) serve(w http.ResponseWriter, r *http.Request, room string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту.
		slog.WarnContext(r.Context(), "websocket upgrade failed", slog.String("room", room), slog.Any("error", err))
		return
	}
	slog.DebugContext(r.Context(), "websocket connection upgraded", slog.String("room", room))

	feed.NewClient(h.hub, conn, room).Serve()
}
