package integration

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"bingo_backend/internal/db"
	"bingo_backend/internal/domain"
	"bingo_backend/internal/repository"
	"bingo_backend/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func applyMigrations(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(migDir, name))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := pool.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", name, err)
		}
	}
}

func connect(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	pool, err := db.Connect(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(pool.Close)

	applyMigrations(t, pool)
	return pool
}

func TestAuditRepository_Create_GetByGame(t *testing.T) {
	pool := connect(t)
	repo := repository.NewAuditRepository(pool)
	ctx := context.Background()
	gameID := uuid.NewString()

	ev := &domain.AuditEvent{
		GameID:  gameID,
		Action:  domain.AuditActionNumberDrawn,
		Details: map[string]interface{}{"number": 42},
	}
	if err := repo.Create(ctx, ev); err != nil {
		t.Fatalf("create event: %v", err)
	}
	if ev.ID == 0 || ev.CreatedAt.IsZero() {
		t.Fatalf("expected id and created_at to be filled, got %+v", ev)
	}

	events, err := repo.GetByGame(ctx, gameID, 10)
	if err != nil {
		t.Fatalf("get by game: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].PlayerID != "" {
		t.Fatalf("expected empty player id, got %q", events[0].PlayerID)
	}
	// numbers come back from jsonb as float64
	if n, _ := events[0].Details["number"].(float64); n != 42 {
		t.Fatalf("expected number 42 in details, got %v", events[0].Details)
	}
}

func TestAuditService_RecordsGameEvents(t *testing.T) {
	pool := connect(t)
	audit := service.NewAuditService(pool)
	ctx := context.Background()
	gameID := uuid.NewString()

	audit.GameCreated(ctx, domain.GameSnapshot{ID: gameID, Name: "audit"})
	audit.PlayerRegistered(ctx, gameID, "p1", true)
	audit.NumberDrawn(ctx, gameID, 7, 1)
	audit.BingoChecked(ctx, gameID, "p1", false)

	events, err := repository.NewAuditRepository(pool).GetByGame(ctx, gameID, 10)
	if err != nil {
		t.Fatalf("get by game: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}

	// newest first
	want := []string{
		domain.AuditActionBingoChecked,
		domain.AuditActionNumberDrawn,
		domain.AuditActionPlayerRegistered,
		domain.AuditActionGameCreated,
	}
	for i, ev := range events {
		if ev.Action != want[i] {
			t.Fatalf("event %d: expected %s, got %s", i, want[i], ev.Action)
		}
	}
}
