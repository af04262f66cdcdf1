package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"bingo_backend/internal/domain"
)

func TestGameRepository_CreateAndLookup(t *testing.T) {
	repo := NewGameRepository()
	if err := repo.Create(domain.NewGame("g1", "first")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(domain.NewGame("g1", "again")); !errors.Is(err, domain.ErrDuplicateGame) {
		t.Fatalf("expected ErrDuplicateGame, got %v", err)
	}

	snap, err := repo.Snapshot("g1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Name != "first" {
		t.Fatalf("duplicate create overwrote the game: %+v", snap)
	}

	err = repo.WithGame("missing", func(*domain.Game) error { return nil })
	if !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if repo.Count() != 1 {
		t.Fatalf("expected 1 game, got %d", repo.Count())
	}
}

func TestGameRepository_WithGameSerializes(t *testing.T) {
	repo := NewGameRepository()
	_ = repo.Create(domain.NewGame("g1", ""))

	var wg sync.WaitGroup
	for i := 0; i < domain.NumberMax; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = repo.WithGame("g1", func(g *domain.Game) error {
				return g.AppendDraw(n)
			})
		}(i + 1)
	}
	wg.Wait()

	snap, _ := repo.Snapshot("g1")
	if len(snap.Drawn) != domain.NumberMax {
		t.Fatalf("expected %d draws, got %d", domain.NumberMax, len(snap.Drawn))
	}
	if snap.State != domain.GameStateExhausted {
		t.Fatalf("expected exhausted, got %s", snap.State)
	}
}

func TestGameRepository_ConcurrentCreate(t *testing.T) {
	repo := NewGameRepository()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(domain.NewGame(fmt.Sprintf("g%d", i), ""))
		}(i)
	}
	wg.Wait()
	if repo.Count() != 50 {
		t.Fatalf("expected 50 games, got %d", repo.Count())
	}
}
