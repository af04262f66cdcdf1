package service

import (
	"context"
	"fmt"

	"bingo_backend/internal/domain"
	"bingo_backend/internal/game"
	"bingo_backend/internal/logger"
	"bingo_backend/internal/repository"

	"github.com/google/uuid"
)

// ValidationAuthority is the remote side of every card operation.
// validation.Client implements it over HTTP.
type ValidationAuthority interface {
	RegisterCard(ctx context.Context, playerID string, numbers []int) error
	ValidateNumber(ctx context.Context, playerID string, number int) (bool, error)
	ValidateBingo(ctx context.Context, playerID string, drawn []int) (bool, error)
	GetCard(ctx context.Context, playerID string) ([]int, error)
}

// ForwardStatus tells whether the card reached the validation authority.
type ForwardStatus string

const (
	ForwardOK     ForwardStatus = "ok"
	ForwardFailed ForwardStatus = "failed"
)

// RegisterResult is returned for every successful registration, including
// the ones whose card forward failed. A failed forward is never retried.
type RegisterResult struct {
	PlayerID   string
	Card       []int
	Forward    ForwardStatus
	ForwardErr error
}

// GameServiceConfig holds optional collaborators of the game authority
type GameServiceConfig struct {
	Source   game.Source
	Observer GameObserver
	NewID    func() string
}

// GameService is the game authority: it owns games and their draw history
// and delegates everything about cards to the validation authority.
type GameService struct {
	games      *repository.GameRepository
	validation ValidationAuthority
	src        game.Source
	observer   GameObserver
	newID      func() string
}

// NewGameService creates a game authority with crypto randomness and no observers
func NewGameService(games *repository.GameRepository, validation ValidationAuthority) *GameService {
	return NewGameServiceWithConfig(games, validation, GameServiceConfig{})
}

// NewGameServiceWithConfig creates a game authority with custom collaborators
func NewGameServiceWithConfig(games *repository.GameRepository, validation ValidationAuthority, cfg GameServiceConfig) *GameService {
	s := &GameService{
		games:      games,
		validation: validation,
		src:        cfg.Source,
		observer:   cfg.Observer,
		newID:      cfg.NewID,
	}
	if s.src == nil {
		s.src = game.NewCryptoSource()
	}
	if s.observer == nil {
		s.observer = NopObserver{}
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// CreateGame stores a new empty game.
func (s *GameService) CreateGame(ctx context.Context, name string) (domain.GameSnapshot, error) {
	g := domain.NewGame(s.newID(), name)
	if err := s.games.Create(g); err != nil {
		return domain.GameSnapshot{}, err
	}
	snap := g.Snapshot()

	logger.Info("game created", "game_id", g.ID, "name", name)
	s.observer.GameCreated(ctx, snap)
	return snap, nil
}

// GetGame returns a copy of the game including its draw history.
func (s *GameService) GetGame(ctx context.Context, gameID string) (domain.GameSnapshot, error) {
	return s.games.Snapshot(gameID)
}

// RegisterPlayer adds a player to the game, generates the card and forwards
// it to the validation authority. The forward is best-effort.
func (s *GameService) RegisterPlayer(ctx context.Context, gameID, playerName string) (*RegisterResult, error) {
	playerID := s.newID()

	var card []int
	err := s.games.WithGame(gameID, func(g *domain.Game) error {
		card = game.GenerateCard(s.src)
		g.AddPlayer(playerID, playerName)
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &RegisterResult{PlayerID: playerID, Card: card, Forward: ForwardOK}
	if err := s.validation.RegisterCard(ctx, playerID, card); err != nil {
		res.Forward = ForwardFailed
		res.ForwardErr = err
		logger.Warn("card forward failed", "game_id", gameID, "player_id", playerID, "error", err)
	}

	logger.Info("player registered", "game_id", gameID, "player_id", playerID, "name", playerName, "forward", res.Forward)
	s.observer.PlayerRegistered(ctx, gameID, playerID, res.Forward == ForwardOK)
	return res, nil
}

// DrawNumber reveals one number not yet drawn in the game. Choosing and
// appending happen under the game lock.
func (s *GameService) DrawNumber(ctx context.Context, gameID string) (int, error) {
	var number, count int
	err := s.games.WithGame(gameID, func(g *domain.Game) error {
		if g.IsExhausted() {
			return domain.ErrExhausted
		}
		n, ok := game.DrawExcluding(s.src, g.Drawn)
		if !ok {
			return domain.ErrExhausted
		}
		if err := g.AppendDraw(n); err != nil {
			return err
		}
		number, count = n, len(g.Drawn)
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Debug("number drawn", "game_id", gameID, "number", number, "count", count)
	s.observer.NumberDrawn(ctx, gameID, number, count)
	return number, nil
}

// MarkNumber rejects numbers the game has not drawn, then asks the
// validation authority to mark the card.
func (s *GameService) MarkNumber(ctx context.Context, gameID, playerID string, number int) (bool, error) {
	var drawn bool
	err := s.games.WithGame(gameID, func(g *domain.Game) error {
		drawn = g.HasDrawn(number)
		return nil
	})
	if err != nil {
		return false, err
	}
	if !drawn {
		s.observer.MarkChecked(ctx, gameID, playerID, number, false)
		return false, fmt.Errorf("%w: %d", domain.ErrNotDrawn, number)
	}

	ok, err := s.validation.ValidateNumber(ctx, playerID, number)
	if err != nil {
		logger.Warn("validate number failed", "game_id", gameID, "player_id", playerID, "number", number, "error", err)
		s.observer.MarkChecked(ctx, gameID, playerID, number, false)
		return false, err
	}

	s.observer.MarkChecked(ctx, gameID, playerID, number, ok)
	return ok, nil
}

// CheckBingo sends the whole draw history to the validation authority and
// returns its verdict. A win does not change the game.
func (s *GameService) CheckBingo(ctx context.Context, gameID, playerID string) (bool, error) {
	var drawn []int
	err := s.games.WithGame(gameID, func(g *domain.Game) error {
		drawn = append([]int(nil), g.Drawn...)
		return nil
	})
	if err != nil {
		return false, err
	}

	bingo, err := s.validation.ValidateBingo(ctx, playerID, drawn)
	if err != nil {
		logger.Warn("validate bingo failed", "game_id", gameID, "player_id", playerID, "error", err)
		s.observer.BingoChecked(ctx, gameID, playerID, false)
		return false, err
	}

	logger.Info("bingo checked", "game_id", gameID, "player_id", playerID, "bingo", bingo, "drawn", len(drawn))
	s.observer.BingoChecked(ctx, gameID, playerID, bingo)
	return bingo, nil
}

// GetPlayerCard reads the card of a player registered in the game.
func (s *GameService) GetPlayerCard(ctx context.Context, gameID, playerID string) ([]int, error) {
	var member bool
	err := s.games.WithGame(gameID, func(g *domain.Game) error {
		member = g.HasPlayer(playerID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, domain.ErrPlayerNotInGame
	}

	numbers, err := s.validation.GetCard(ctx, playerID)
	if err != nil {
		logger.Warn("get card failed", "game_id", gameID, "player_id", playerID, "error", err)
		return nil, err
	}
	return numbers, nil
}
