package neoncube

import (
	"math/rand"
	"time"
)

// Default scramble lengths.
const (
	ScrambleMoves          = 20
	ChallengeScrambleMoves = 10
)

// NewRand returns a time-seeded source for callers that do not need
// reproducible scrambles.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// RandomMove draws an axis, a layer and a direction uniformly.
func (c *Cube) RandomMove(r *rand.Rand) Move {
	return Move{
		Axis:  Axis(r.Intn(3)),
		Layer: LayerOffset(c.size, r.Intn(c.size)),
		Turn:  []Turn{CCW, CW}[r.Intn(2)],
	}
}

// Scramble applies n random quarter turns and returns them. A nil r uses a
// time-seeded source. Scrambling is not animated and is not a user move;
// counters are the caller's concern (see Tracker.Scramble).
func (c *Cube) Scramble(r *rand.Rand, n int) []Move {
	if n <= 0 {
		return nil
	}
	if r == nil {
		r = NewRand()
	}
	moves := make([]Move, 0, n)
	for i := 0; i < n; i++ {
		m := c.RandomMove(r)
		// Offsets come from LayerOffset so they are always on the lattice.
		c.rotate(m.Axis, int(2*m.Layer), m.Turn)
		moves = append(moves, m)
	}
	return moves
}
