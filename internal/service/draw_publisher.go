package service

import (
	"context"
	"encoding/json"
	"time"

	"bingo_backend/internal/domain"
	"bingo_backend/internal/logger"

	redis "github.com/redis/go-redis/v9"
)

const publishTimeout = time.Second

// DrawEvent is the JSON published for every draw and every winning check.
type DrawEvent struct {
	Type     string `json:"type"`
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id,omitempty"`
	Number   int    `json:"number,omitempty"`
	Count    int    `json:"count,omitempty"`
	At       int64  `json:"at"`
}

// DrawChannel returns the pub/sub channel of one game.
func DrawChannel(gameID string) string {
	return "bingo:draws:" + gameID
}

// DrawPublisher publishes draw events to Redis so other processes can
// follow a game. Publishing is fire-and-forget.
type DrawPublisher struct {
	NopObserver
	rdb *redis.Client
}

// NewDrawPublisher connects to Redis. It returns nil when addr is empty or
// the server does not answer a ping, keeping the game authority available.
func NewDrawPublisher(addr, password string, db int) *DrawPublisher {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, draw publishing disabled", "addr", addr, "error", err)
		_ = rdb.Close()
		return nil
	}
	return &DrawPublisher{rdb: rdb}
}

func (p *DrawPublisher) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

func (p *DrawPublisher) Close() error {
	return p.rdb.Close()
}

func (p *DrawPublisher) NumberDrawn(ctx context.Context, gameID string, number, drawnCount int) {
	p.publish(ctx, DrawEvent{Type: "draw", GameID: gameID, Number: number, Count: drawnCount})
}

func (p *DrawPublisher) BingoChecked(ctx context.Context, gameID, playerID string, bingo bool) {
	if !bingo {
		return
	}
	p.publish(ctx, DrawEvent{Type: "bingo", GameID: gameID, PlayerID: playerID})
}

func (p *DrawPublisher) GameCreated(ctx context.Context, game domain.GameSnapshot) {
	p.publish(ctx, DrawEvent{Type: "created", GameID: game.ID})
}

func (p *DrawPublisher) publish(ctx context.Context, ev DrawEvent) {
	ev.At = time.Now().UnixMilli()
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := p.rdb.Publish(ctx, DrawChannel(ev.GameID), payload).Err(); err != nil {
		logger.Warn("draw publish failed", "game_id", ev.GameID, "type", ev.Type, "error", err)
	}
}
