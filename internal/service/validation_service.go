package service

import (
	"context"
	"fmt"

	"bingo_backend/internal/domain"
	"bingo_backend/internal/logger"
	"bingo_backend/internal/repository"
)

// ValidationService is the validation authority: it owns cards and marks.
// It never calls the game authority.
type ValidationService struct {
	cards    *repository.CardRepository
	observer ValidationObserver
}

// NewValidationService creates a validation authority without observers
func NewValidationService(cards *repository.CardRepository) *ValidationService {
	return NewValidationServiceWithObserver(cards, nil)
}

// NewValidationServiceWithObserver creates a validation authority reporting to obs
func NewValidationServiceWithObserver(cards *repository.CardRepository, obs ValidationObserver) *ValidationService {
	if obs == nil {
		obs = NopObserver{}
	}
	return &ValidationService{cards: cards, observer: obs}
}

// RegisterCard stores the card, overwriting any previous one and its marks.
func (s *ValidationService) RegisterCard(ctx context.Context, playerID string, numbers []int) {
	card := domain.NewCard(playerID, numbers)
	s.cards.Put(card)

	logger.Info("card registered", "player_id", playerID, "numbers", card.Numbers())
	s.observer.CardRegistered(ctx, playerID, len(card.Numbers()))
}

// ValidateNumber marks number on the player's card. It fails with
// domain.ErrPlayerNotFound or domain.ErrNotOnCard and leaves the card
// untouched in both cases.
func (s *ValidationService) ValidateNumber(ctx context.Context, playerID string, number int) error {
	err := s.cards.WithCard(playerID, func(c *domain.Card) error {
		if !c.Mark(number) {
			return fmt.Errorf("%w: %d", domain.ErrNotOnCard, number)
		}
		return nil
	})

	s.observer.NumberValidated(ctx, playerID, number, err == nil)
	return err
}

// ValidateBingo marks every drawn number that is on the card, then reports
// whether the whole card is marked. Missed marks are healed here.
func (s *ValidationService) ValidateBingo(ctx context.Context, playerID string, drawn []int) (bool, error) {
	var bingo bool
	var reconciled int
	err := s.cards.WithCard(playerID, func(c *domain.Card) error {
		reconciled = c.Reconcile(drawn)
		bingo = c.IsBingo()
		return nil
	})
	if err != nil {
		s.observer.BingoValidated(ctx, playerID, 0, false)
		return false, err
	}

	if reconciled > 0 {
		logger.Debug("marks reconciled", "player_id", playerID, "added", reconciled)
	}
	s.observer.BingoValidated(ctx, playerID, reconciled, bingo)
	return bingo, nil
}

// GetCard returns the sorted card numbers.
func (s *ValidationService) GetCard(ctx context.Context, playerID string) ([]int, error) {
	var numbers []int
	err := s.cards.WithCard(playerID, func(c *domain.Card) error {
		numbers = c.Numbers()
		return nil
	})
	return numbers, err
}

// MarkedNumbers returns the sorted marked numbers of a player.
func (s *ValidationService) MarkedNumbers(ctx context.Context, playerID string) ([]int, error) {
	var marked []int
	err := s.cards.WithCard(playerID, func(c *domain.Card) error {
		marked = c.Marked()
		return nil
	})
	return marked, err
}
