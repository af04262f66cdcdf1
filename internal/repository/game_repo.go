package repository

import (
	"sync"

	"bingo_backend/internal/domain"
)

// GameRepository keeps games in memory. The map lock only guards lookup and
// insert; every game carries its own lock so draws on different games never
// contend.
type GameRepository struct {
	mu    sync.RWMutex
	games map[string]*gameRecord
}

type gameRecord struct {
	mu   sync.Mutex
	game *domain.Game
}

func NewGameRepository() *GameRepository {
	return &GameRepository{games: make(map[string]*gameRecord)}
}

// Create stores a new game. Ids are never reused.
func (r *GameRepository) Create(g *domain.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.games[g.ID]; exists {
		return domain.ErrDuplicateGame
	}
	r.games[g.ID] = &gameRecord{game: g}
	return nil
}

// WithGame runs fn while holding the lock of game id. fn must not block on
// I/O: copy what it needs and return.
func (r *GameRepository) WithGame(id string, fn func(g *domain.Game) error) error {
	r.mu.RLock()
	rec, ok := r.games[id]
	r.mu.RUnlock()
	if !ok {
		return domain.ErrGameNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return fn(rec.game)
}

// Snapshot returns a lock-free copy of game id.
func (r *GameRepository) Snapshot(id string) (domain.GameSnapshot, error) {
	var snap domain.GameSnapshot
	err := r.WithGame(id, func(g *domain.Game) error {
		snap = g.Snapshot()
		return nil
	})
	return snap, err
}

func (r *GameRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
