package service

import (
	"context"

	"bingo_backend/internal/domain"
)

// GameObserver receives game authority events after the state change has
// been committed. Implementations must not block for long: they run on the
// request goroutine.
type GameObserver interface {
	GameCreated(ctx context.Context, game domain.GameSnapshot)
	PlayerRegistered(ctx context.Context, gameID, playerID string, forwarded bool)
	NumberDrawn(ctx context.Context, gameID string, number, drawnCount int)
	MarkChecked(ctx context.Context, gameID, playerID string, number int, ok bool)
	BingoChecked(ctx context.Context, gameID, playerID string, bingo bool)
}

// ValidationObserver receives validation authority events.
type ValidationObserver interface {
	CardRegistered(ctx context.Context, playerID string, size int)
	NumberValidated(ctx context.Context, playerID string, number int, ok bool)
	BingoValidated(ctx context.Context, playerID string, reconciled int, bingo bool)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) GameCreated(context.Context, domain.GameSnapshot) {}
func (NopObserver) PlayerRegistered(context.Context, string, string, bool) {}
func (NopObserver) NumberDrawn(context.Context, string, int, int) {}
func (NopObserver) MarkChecked(context.Context, string, string, int, bool) {}
func (NopObserver) BingoChecked(context.Context, string, string, bool) {}
func (NopObserver) CardRegistered(context.Context, string, int) {}
func (NopObserver) NumberValidated(context.Context, string, int, bool) {}
func (NopObserver) BingoValidated(context.Context, string, int, bool) {}

// GameObservers fans events out in order.
type GameObservers []GameObserver

func (o GameObservers) GameCreated(ctx context.Context, game domain.GameSnapshot) {
	for _, obs := range o {
		obs.GameCreated(ctx, game)
	}
}

func (o GameObservers) PlayerRegistered(ctx context.Context, gameID, playerID string, forwarded bool) {
	for _, obs := range o {
		obs.PlayerRegistered(ctx, gameID, playerID, forwarded)
	}
}

func (o GameObservers) NumberDrawn(ctx context.Context, gameID string, number, drawnCount int) {
	for _, obs := range o {
		obs.NumberDrawn(ctx, gameID, number, drawnCount)
	}
}

func (o GameObservers) MarkChecked(ctx context.Context, gameID, playerID string, number int, ok bool) {
	for _, obs := range o {
		obs.MarkChecked(ctx, gameID, playerID, number, ok)
	}
}

func (o GameObservers) BingoChecked(ctx context.Context, gameID, playerID string, bingo bool) {
	for _, obs := range o {
		obs.BingoChecked(ctx, gameID, playerID, bingo)
	}
}
