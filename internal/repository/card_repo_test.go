package repository

import (
	"errors"
	"sync"
	"testing"

	"bingo_backend/internal/domain"
)

func TestCardRepository_PutReplaces(t *testing.T) {
	repo := NewCardRepository()
	repo.Put(domain.NewCard("p1", []int{1, 2, 3}))

	_ = repo.WithCard("p1", func(c *domain.Card) error {
		c.Mark(2)
		return nil
	})

	repo.Put(domain.NewCard("p1", []int{4, 5, 6}))
	err := repo.WithCard("p1", func(c *domain.Card) error {
		if c.Has(2) || len(c.Marked()) != 0 {
			t.Fatalf("re-registration kept the old card or marks")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("with card: %v", err)
	}
	if repo.Count() != 1 {
		t.Fatalf("expected 1 card, got %d", repo.Count())
	}
}

func TestCardRepository_UnknownPlayer(t *testing.T) {
	repo := NewCardRepository()
	err := repo.WithCard("nobody", func(*domain.Card) error { return nil })
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestCardRepository_ConcurrentMarks(t *testing.T) {
	repo := NewCardRepository()
	nums := make([]int, 0, domain.CardSize)
	for n := 1; n <= domain.CardSize; n++ {
		nums = append(nums, n)
	}
	repo.Put(domain.NewCard("p1", nums))

	var wg sync.WaitGroup
	for _, n := range nums {
		for k := 0; k < 4; k++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_ = repo.WithCard("p1", func(c *domain.Card) error {
					c.Mark(n)
					return nil
				})
			}(n)
		}
	}
	wg.Wait()

	_ = repo.WithCard("p1", func(c *domain.Card) error {
		if !c.IsBingo() {
			t.Fatalf("expected every number marked, got %v", c.Marked())
		}
		return nil
	})
}
