package domain

import "sort"

// Card is owned by the validation authority. Marked is always a subset of
// the card numbers and only ever grows.
type Card struct {
	PlayerID string

	numbers map[int]struct{}
	marked  map[int]struct{}
}

// NewCard stores numbers as a set with nothing marked. Size and range are
// not checked here: the validation authority trusts the generated card.
func NewCard(playerID string, numbers []int) *Card {
	set := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		set[n] = struct{}{}
	}
	return &Card{
		PlayerID: playerID,
		numbers:  set,
		marked:   make(map[int]struct{}, len(set)),
	}
}

func (c *Card) Has(n int) bool {
	_, ok := c.numbers[n]
	return ok
}

func (c *Card) IsMarked(n int) bool {
	_, ok := c.marked[n]
	return ok
}

// Mark records n as marked. It reports false and changes nothing when n is
// not on the card; re-marking is a no-op that still reports true.
func (c *Card) Mark(n int) bool {
	if !c.Has(n) {
		return false
	}
	c.marked[n] = struct{}{}
	return true
}

// Reconcile marks every drawn number that is on the card and returns how
// many numbers were newly marked.
func (c *Card) Reconcile(drawn []int) int {
	added := 0
	for _, n := range drawn {
		if !c.Has(n) || c.IsMarked(n) {
			continue
		}
		c.marked[n] = struct{}{}
		added++
	}
	return added
}

// IsBingo reports whether every number on the card is marked.
func (c *Card) IsBingo() bool {
	return len(c.marked) == len(c.numbers)
}

func (c *Card) Numbers() []int {
	return sortedKeys(c.numbers)
}

func (c *Card) Marked() []int {
	return sortedKeys(c.marked)
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
