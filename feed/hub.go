// Package feed рассылает изменения матчей подписчикам по WebSocket.
// Клиент подписывается на комнату матча или игры.
package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
)

// Типы сообщений.
const (
	MessageMatchUpdated  = "MATCH_UPDATED"
	MessageMatchDeleted  = "MATCH_DELETED"
	MessageResultUpdated = "RESULT_UPDATED"
)

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	RoomID  string      `json:"room_id,omitempty"`
}

func MatchRoom(matchID int) string { return "match_" + strconv.Itoa(matchID) }
func GameRoom(gameID int) string   { return "game_" + strconv.Itoa(gameID) }

type Hub struct {
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run обслуживает регистрацию клиентов до отмены ctx, затем закрывает все соединения.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for room, clients := range h.rooms {
				for client := range clients {
					client.closeSend()
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.room]; !ok {
				h.rooms[client.room] = make(map[*Client]bool)
			}
			h.rooms[client.room][client] = true
			h.logger.Debug("feed client registered", slog.String("room", client.room), slog.Int("clients", len(h.rooms[client.room])))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.room]; ok {
				if _, okClient := clients[client]; okClient {
					client.closeSend()
					delete(clients, client)
					if len(clients) == 0 {
						delete(h.rooms, client.room)
					}
					h.logger.Debug("feed client unregistered", slog.String("room", client.room))
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register добавляет клиента в комнату. Возвращает false, если хаб уже остановлен.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// RoomSize возвращает число подписчиков комнаты.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// BroadcastToRoom отправляет сообщение всем клиентам комнаты. Медленные
// клиенты с полным буфером пропускают сообщение.
func (h *Hub) BroadcastToRoom(roomID string, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	roomClients, ok := h.rooms[roomID]
	if !ok {
		return
	}

	msg.RoomID = roomID
	messageBytes, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal feed message", slog.String("room", roomID), slog.Any("error", err))
		return
	}

	for client := range roomClients {
		if !client.trySend(messageBytes) {
			h.logger.Warn("feed client buffer full, message dropped", slog.String("room", roomID))
		}
	}
}

// PublishMatch рассылает событие матча в комнату матча и в комнату его игры.
func (h *Hub) PublishMatch(matchID, gameID int, messageType string, payload interface{}) {
	msg := Message{Type: messageType, Payload: payload}
	h.BroadcastToRoom(MatchRoom(matchID), msg)
	h.BroadcastToRoom(GameRoom(gameID), msg)
}
