package domain

import (
	"errors"
	"testing"
)

func TestGame_AppendDraw(t *testing.T) {
	g := NewGame("g1", "friday")
	if g.State() != GameStateCreated {
		t.Fatalf("expected created, got %s", g.State())
	}

	if err := g.AppendDraw(10); err != nil {
		t.Fatalf("append 10: %v", err)
	}
	if !g.HasDrawn(10) || g.HasDrawn(11) {
		t.Fatalf("unexpected membership after first draw")
	}
	if g.State() != GameStateDrawing {
		t.Fatalf("expected drawing, got %s", g.State())
	}

	cases := []struct {
		n    int
		want error
	}{
		{10, ErrAlreadyDrawn},
		{0, ErrOutOfRange},
		{76, ErrOutOfRange},
		{-3, ErrOutOfRange},
	}
	for _, tc := range cases {
		if err := g.AppendDraw(tc.n); !errors.Is(err, tc.want) {
			t.Fatalf("AppendDraw(%d) = %v; want %v", tc.n, err, tc.want)
		}
	}
	if len(g.Drawn) != 1 {
		t.Fatalf("rejected draws must not change history, got %v", g.Drawn)
	}
}

func TestGame_Exhausted(t *testing.T) {
	g := NewGame("g1", "")
	for n := NumberMax; n >= NumberMin; n-- {
		if err := g.AppendDraw(n); err != nil {
			t.Fatalf("append %d: %v", n, err)
		}
	}
	if !g.IsExhausted() || g.State() != GameStateExhausted {
		t.Fatalf("expected exhausted after %d draws", len(g.Drawn))
	}
	if err := g.AppendDraw(1); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if g.Drawn[0] != NumberMax || g.Drawn[NumberMax-1] != NumberMin {
		t.Fatalf("draw order not preserved")
	}
}

func TestGame_SnapshotIsCopy(t *testing.T) {
	g := NewGame("g1", "copy")
	_ = g.AppendDraw(5)
	g.AddPlayer("b", "Bob")
	g.AddPlayer("a", "Ann")

	snap := g.Snapshot()
	snap.Drawn[0] = 99
	if g.Drawn[0] != 5 {
		t.Fatalf("snapshot shares draw history with the game")
	}
	if len(snap.PlayerIDs) != 2 || snap.PlayerIDs[0] != "a" {
		t.Fatalf("expected sorted player ids, got %v", snap.PlayerIDs)
	}
	if !g.HasPlayer("a") || g.HasPlayer("c") {
		t.Fatalf("unexpected membership")
	}
}

func TestErrorKinds(t *testing.T) {
	if !errors.Is(ErrGameNotFound, ErrNotFound) || !errors.Is(ErrPlayerNotFound, ErrNotFound) {
		t.Fatalf("not found errors must match ErrNotFound")
	}
	if !errors.Is(ErrNotDrawn, ErrInvalidMark) || !errors.Is(ErrNotOnCard, ErrInvalidMark) {
		t.Fatalf("mark errors must match ErrInvalidMark")
	}
}
