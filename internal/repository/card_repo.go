package repository

import (
	"sync"

	"bingo_backend/internal/domain"
)

// CardRepository keeps one card per player, each behind its own lock.
type CardRepository struct {
	mu    sync.RWMutex
	cards map[string]*cardRecord
}

type cardRecord struct {
	mu   sync.Mutex
	card *domain.Card
}

func NewCardRepository() *CardRepository {
	return &CardRepository{cards: make(map[string]*cardRecord)}
}

// Put stores card, replacing any previous card for the same player.
// The swap happens under the player lock so an in-flight mark on the old
// card finishes before the reset becomes visible.
func (r *CardRepository) Put(card *domain.Card) {
	r.mu.Lock()
	rec, ok := r.cards[card.PlayerID]
	if !ok {
		rec = &cardRecord{}
		r.cards[card.PlayerID] = rec
	}
	r.mu.Unlock()

	rec.mu.Lock()
	rec.card = card
	rec.mu.Unlock()
}

// WithCard runs fn while holding the lock of the player's card.
func (r *CardRepository) WithCard(playerID string, fn func(c *domain.Card) error) error {
	r.mu.RLock()
	rec, ok := r.cards[playerID]
	r.mu.RUnlock()
	if !ok {
		return domain.ErrPlayerNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.card == nil {
		return domain.ErrPlayerNotFound
	}
	return fn(rec.card)
}

func (r *CardRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cards)
}
