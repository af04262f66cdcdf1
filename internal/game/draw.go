package game

import "bingo_backend/internal/domain"

// Remaining lists the numbers not yet present in drawn, ascending.
func Remaining(drawn []int) []int {
	var taken [domain.NumberMax + 1]bool
	for _, n := range drawn {
		if domain.InRange(n) {
			taken[n] = true
		}
	}

	out := make([]int, 0, domain.NumberMax-len(drawn))
	for n := domain.NumberMin; n <= domain.NumberMax; n++ {
		if !taken[n] {
			out = append(out, n)
		}
	}
	return out
}

// DrawExcluding picks a number uniformly among those not in drawn.
// Picking an index into the remaining set gives the same distribution as
// re-rolling until an undrawn number comes up, without the retry loop.
// ok is false once every number has been drawn.
func DrawExcluding(src Source, drawn []int) (n int, ok bool) {
	left := Remaining(drawn)
	if len(left) == 0 {
		return 0, false
	}
	return left[src.Intn(len(left))], true
}
