package cube

import "math/rand"

// RandomScramble draws n random moves. Consecutive draws on the same
// face are rerolled so the sequence is not trivially collapsible; the
// depth of the resulting state is still at most n, not exactly n.
func RandomScramble(n int, rng *rand.Rand) []Move {
	moves := make([]Move, 0, n)
	last := Face(-1)
	for len(moves) < n {
		f := Face(rng.Intn(6))
		if f == last {
			continue
		}
		moves = append(moves, Move{Face: f, Turns: 1 + rng.Intn(3)})
		last = f
	}
	return moves
}
