package ws

import (
	"context"
	"encoding/json"
	"sync"

	"bingo_backend/internal/logger"
	"bingo_backend/internal/service"
)

// Hub fans game events out to the websocket subscribers of each game.
// It is a service.GameObserver; subscribers never influence the game.
type Hub struct {
	service.NopObserver

	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]struct{})}
}

func (h *Hub) Join(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[c.GameID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[c.GameID] = room
	}
	room[c] = struct{}{}
	logger.Debug("feed subscriber joined", "game_id", c.GameID, "subscribers", len(room))
}

func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[c.GameID]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, c.GameID)
	}
}

// Subscribers returns the number of clients following gameID.
func (h *Hub) Subscribers(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[gameID])
}

// Broadcast queues msg for every subscriber of gameID. Subscribers whose
// buffer is full are dropped instead of slowing the draw down.
func (h *Hub) Broadcast(gameID string, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		logger.Error("feed marshal failed", "type", msg.Type, "error", err)
		return
	}

	h.mu.RLock()
	var slow []*Client
	for c := range h.rooms[gameID] {
		if !c.enqueue(data) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		logger.Warn("dropping slow feed subscriber", "game_id", gameID)
		c.Close()
		h.Leave(c)
	}
}

func (h *Hub) NumberDrawn(_ context.Context, gameID string, number, drawnCount int) {
	h.Broadcast(gameID, Message{
		Type:    MsgDraw,
		Payload: DrawPayload{GameID: gameID, Number: number, Count: drawnCount},
	})
}

func (h *Hub) BingoChecked(_ context.Context, gameID, playerID string, bingo bool) {
	if !bingo {
		return
	}
	h.Broadcast(gameID, Message{
		Type:    MsgBingo,
		Payload: BingoPayload{GameID: gameID, PlayerID: playerID},
	})
}
