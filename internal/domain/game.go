package domain

import (
	"fmt"
	"sort"
	"time"
)

const (
	NumberMin = 1
	NumberMax = 75
	CardSize  = 24
)

// GameState - состояние розыгрыша
type GameState string

const (
	GameStateCreated   GameState = "created"
	GameStateDrawing   GameState = "drawing"
	GameStateExhausted GameState = "exhausted"
)

// Game is owned by the game authority. Drawn keeps draw order; the
// lookup table mirrors it so membership checks stay constant time.
type Game struct {
	ID        string
	Name      string
	Drawn     []int
	Players   map[string]string // player id -> display name
	CreatedAt time.Time

	drawn [NumberMax + 1]bool
}

// NewGame creates an empty game with no draws and no players.
func NewGame(id, name string) *Game {
	return &Game{
		ID:        id,
		Name:      name,
		Drawn:     make([]int, 0, NumberMax),
		Players:   make(map[string]string),
		CreatedAt: time.Now().UTC(),
	}
}

func InRange(n int) bool {
	return n >= NumberMin && n <= NumberMax
}

// State derives the lifecycle state from the draw history.
func (g *Game) State() GameState {
	switch {
	case len(g.Drawn) == 0:
		return GameStateCreated
	case g.IsExhausted():
		return GameStateExhausted
	default:
		return GameStateDrawing
	}
}

func (g *Game) IsExhausted() bool {
	return len(g.Drawn) >= NumberMax
}

func (g *Game) HasDrawn(n int) bool {
	return InRange(n) && g.drawn[n]
}

// AppendDraw records n as the next drawn number. It never lets the
// history contain a duplicate or grow past NumberMax entries.
func (g *Game) AppendDraw(n int) error {
	if g.IsExhausted() {
		return ErrExhausted
	}
	if !InRange(n) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if g.drawn[n] {
		return fmt.Errorf("%w: %d", ErrAlreadyDrawn, n)
	}
	g.drawn[n] = true
	g.Drawn = append(g.Drawn, n)
	return nil
}

func (g *Game) AddPlayer(playerID, name string) {
	g.Players[playerID] = name
}

func (g *Game) HasPlayer(playerID string) bool {
	_, ok := g.Players[playerID]
	return ok
}

// GameSnapshot is a copy of a game that is safe to read without the game lock.
type GameSnapshot struct {
	ID        string    `json:"game_id"`
	Name      string    `json:"game_name"`
	State     GameState `json:"state"`
	Drawn     []int     `json:"drawn_numbers"`
	PlayerIDs []string  `json:"players"`
	CreatedAt time.Time `json:"created_at"`
}

func (g *Game) Snapshot() GameSnapshot {
	players := make([]string, 0, len(g.Players))
	for id := range g.Players {
		players = append(players, id)
	}
	sort.Strings(players)

	return GameSnapshot{
		ID:        g.ID,
		Name:      g.Name,
		State:     g.State(),
		Drawn:     append([]int(nil), g.Drawn...),
		PlayerIDs: players,
		CreatedAt: g.CreatedAt,
	}
}
