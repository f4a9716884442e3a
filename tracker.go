package neoncube

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Tracker wraps a Cube, counts user moves and reports when the cube
// becomes solved.
type Tracker struct {
	cube      *Cube
	cfg       *config
	moves     []Move
	moveCount int
	onSolved  func()
}

// NewTracker creates a tracker around cube.
func NewTracker(cube *Cube, opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rand == nil {
		cfg.rand = NewRand()
	}
	return &Tracker{
		cube: cube,
		cfg:  cfg,
	}
}

// SetSolvedCallback sets a callback that fires when a user move leaves the
// cube solved.
func (t *Tracker) SetSolvedCallback(cb func()) {
	t.onSolved = cb
}

// Reset swaps in a new cube and clears counters and history.
func (t *Tracker) Reset(cube *Cube) {
	t.cube = cube
	t.moves = nil
	t.moveCount = 0
}

// ApplyMove applies a user move and checks for a solve. An invalid layer is
// an upstream input-mapping bug: it is logged and the cube is left as is.
func (t *Tracker) ApplyMove(m Move) (solved bool, err error) {
	if err := t.cube.ApplyMove(m); err != nil {
		if errors.Is(err, ErrInvalidLayer) {
			t.cfg.logger.WithFields(logrus.Fields{
				"move": m.Notation(),
				"size": t.cube.Size(),
			}).Warn("ignoring move on invalid layer")
		}
		return false, err
	}

	t.moveCount++
	if t.cfg.moveHistory {
		t.moves = append(t.moves, m)
	}

	if t.cube.IsSolved() {
		if t.onSolved != nil {
			t.onSolved()
		}
		return true, nil
	}
	return false, nil
}

// Scramble randomises the cube with n moves, bypassing counting and
// history, then zeroes the move counter.
func (t *Tracker) Scramble(n int) []Move {
	seq := t.cube.Scramble(t.cfg.rand, n)
	t.moveCount = 0
	t.moves = nil
	return seq
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// MoveCount returns the number of user moves since the last reset or scramble.
func (t *Tracker) MoveCount() int {
	return t.moveCount
}

// Moves returns the user move history.
func (t *Tracker) Moves() []Move {
	return t.moves
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
