package game

import (
	"fmt"

	"bingo_backend/internal/domain"
)

// GenerateCard picks domain.CardSize distinct numbers from the full range
// with a partial Fisher-Yates shuffle, so every subset is equally likely.
// The result keeps selection order.
func GenerateCard(src Source) []int {
	pool := fullRange()
	for i := 0; i < domain.CardSize; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return append([]int(nil), pool[:domain.CardSize]...)
}

// ValidateCard checks the shape of a generated card.
func ValidateCard(numbers []int) error {
	if len(numbers) != domain.CardSize {
		return fmt.Errorf("card has %d numbers, want %d", len(numbers), domain.CardSize)
	}
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if !domain.InRange(n) {
			return fmt.Errorf("%w: %d", domain.ErrOutOfRange, n)
		}
		if seen[n] {
			return fmt.Errorf("card repeats number %d", n)
		}
		seen[n] = true
	}
	return nil
}

func fullRange() []int {
	out := make([]int, 0, domain.NumberMax)
	for n := domain.NumberMin; n <= domain.NumberMax; n++ {
		out = append(out, n)
	}
	return out
}
