package service

import (
	"context"
	"time"

	"bingo_backend/internal/domain"
	"bingo_backend/internal/logger"
	"bingo_backend/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

const auditWriteTimeout = 2 * time.Second

// AuditService writes game authority events to the bingo_events table.
// A failed write is logged and never fails the request.
type AuditService struct {
	repo *repository.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(db *pgxpool.Pool) *AuditService {
	return &AuditService{
		repo: repository.NewAuditRepository(db),
	}
}

// Log creates a new audit event
func (s *AuditService) Log(ctx context.Context, gameID, playerID, action string, details map[string]interface{}) {
	// the event outlives a client that hung up after the state change
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()

	ev := &domain.AuditEvent{
		GameID:   gameID,
		PlayerID: playerID,
		Action:   action,
		Details:  details,
	}
	if err := s.repo.Create(ctx, ev); err != nil {
		logger.Error("failed to write audit event", "error", err, "action", action, "game_id", gameID)
	}
}

// Ping checks the database, used by readiness probes
func (s *AuditService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *AuditService) GameCreated(ctx context.Context, game domain.GameSnapshot) {
	s.Log(ctx, game.ID, "", domain.AuditActionGameCreated, map[string]interface{}{"name": game.Name})
}

func (s *AuditService) PlayerRegistered(ctx context.Context, gameID, playerID string, forwarded bool) {
	s.Log(ctx, gameID, playerID, domain.AuditActionPlayerRegistered, map[string]interface{}{"forwarded": forwarded})
}

func (s *AuditService) NumberDrawn(ctx context.Context, gameID string, number, drawnCount int) {
	s.Log(ctx, gameID, "", domain.AuditActionNumberDrawn, map[string]interface{}{
		"number": number,
		"count":  drawnCount,
	})
}

func (s *AuditService) MarkChecked(ctx context.Context, gameID, playerID string, number int, ok bool) {
	s.Log(ctx, gameID, playerID, domain.AuditActionMarkChecked, map[string]interface{}{
		"number":  number,
		"success": ok,
	})
}

func (s *AuditService) BingoChecked(ctx context.Context, gameID, playerID string, bingo bool) {
	s.Log(ctx, gameID, playerID, domain.AuditActionBingoChecked, map[string]interface{}{"bingo": bingo})
}
