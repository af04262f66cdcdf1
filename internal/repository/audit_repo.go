package repository

import (
	"context"
	"encoding/json"

	"bingo_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepository writes the bingo event log
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create inserts a new event
func (r *AuditRepository) Create(ctx context.Context, ev *domain.AuditEvent) error {
	detailsJSON, err := json.Marshal(ev.Details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	var playerID *string
	if ev.PlayerID != "" {
		playerID = &ev.PlayerID
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO bingo_events (game_id, player_id, action, details)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, ev.GameID, playerID, ev.Action, detailsJSON).Scan(&ev.ID, &ev.CreatedAt)
}

// GetByGame returns the most recent events of one game, newest first
func (r *AuditRepository) GetByGame(ctx context.Context, gameID string, limit int) ([]*domain.AuditEvent, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, game_id, player_id, action, details, created_at
		FROM bingo_events
		WHERE game_id = $1
		ORDER BY id DESC
		LIMIT $2
	`, gameID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAuditEvents(rows)
}

// Ping checks the pool, used by readiness probes
func (r *AuditRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func scanAuditEvents(rows pgx.Rows) ([]*domain.AuditEvent, error) {
	var events []*domain.AuditEvent
	for rows.Next() {
		var ev domain.AuditEvent
		var playerID *string
		var detailsJSON []byte
		if err := rows.Scan(&ev.ID, &ev.GameID, &playerID, &ev.Action, &detailsJSON, &ev.CreatedAt); err != nil {
			return nil, err
		}
		if playerID != nil {
			ev.PlayerID = *playerID
		}
		if err := json.Unmarshal(detailsJSON, &ev.Details); err != nil {
			ev.Details = make(map[string]interface{})
		}
		events = append(events, &ev)
	}
	return events, rows.Err()
}
