package domain

import (
	"reflect"
	"testing"
)

func seqCard(playerID string, from int) *Card {
	nums := make([]int, 0, CardSize)
	for n := from; n < from+CardSize; n++ {
		nums = append(nums, n)
	}
	return NewCard(playerID, nums)
}

func TestCard_Mark(t *testing.T) {
	c := seqCard("p1", 1)

	if c.Mark(50) {
		t.Fatalf("marked a number that is not on the card")
	}
	if len(c.Marked()) != 0 {
		t.Fatalf("failed mark changed the card: %v", c.Marked())
	}

	if !c.Mark(3) {
		t.Fatalf("expected 3 to be marked")
	}
	// idempotent
	if !c.Mark(3) {
		t.Fatalf("re-marking must still succeed")
	}
	if got := c.Marked(); !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("expected [3], got %v", got)
	}
}

func TestCard_ReconcileAndBingo(t *testing.T) {
	c := seqCard("p1", 1)
	_ = c.Mark(1)

	drawn := []int{60, 2, 1, 70}
	if added := c.Reconcile(drawn); added != 1 {
		t.Fatalf("expected 1 new mark, got %d", added)
	}
	if c.IsBingo() {
		t.Fatalf("bingo with 2 of %d marked", CardSize)
	}

	all := make([]int, 0, NumberMax)
	for n := NumberMax; n >= NumberMin; n-- {
		all = append(all, n)
	}
	if added := c.Reconcile(all); added != CardSize-2 {
		t.Fatalf("expected %d new marks, got %d", CardSize-2, added)
	}
	if !c.IsBingo() {
		t.Fatalf("expected bingo after every number was drawn")
	}
	if c.Reconcile(all) != 0 || !c.IsBingo() {
		t.Fatalf("bingo must be stable")
	}
	for _, n := range c.Marked() {
		if !c.Has(n) {
			t.Fatalf("marked %d is not on the card", n)
		}
	}
}

func TestCard_NumbersSorted(t *testing.T) {
	c := NewCard("p1", []int{9, 3, 7})
	if got := c.Numbers(); !reflect.DeepEqual(got, []int{3, 7, 9}) {
		t.Fatalf("expected sorted numbers, got %v", got)
	}
}
