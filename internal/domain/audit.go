package domain

import "time"

// AuditEvent is one row of the write-only bingo event log. It is never read
// back to rebuild game or card state.
type AuditEvent struct {
	ID        int64                  `db:"id" json:"id"`
	GameID    string                 `db:"game_id" json:"game_id"`
	PlayerID  string                 `db:"player_id" json:"player_id,omitempty"`
	Action    string                 `db:"action" json:"action"`
	Details   map[string]interface{} `db:"details" json:"details"`
	CreatedAt time.Time              `db:"created_at" json:"created_at"`
}

// Audit actions
const (
	AuditActionGameCreated      = "game_created"
	AuditActionPlayerRegistered = "player_registered"
	AuditActionNumberDrawn      = "number_drawn"
	AuditActionMarkChecked      = "mark_checked"
	AuditActionBingoChecked     = "bingo_checked"
)
