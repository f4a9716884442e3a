package neoncube

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Turn is the direction of a quarter turn.
type Turn int

const (
	CCW Turn = 1  // Counter-clockwise viewed from the positive end of the axis
	CW  Turn = -1 // Clockwise viewed from the positive end of the axis
)

// Valid reports whether t is a quarter turn. Half turns and other angles
// are not moves; apply two quarter turns instead.
func (t Turn) Valid() bool {
	return t == CCW || t == CW
}

// Move is a single layer rotation, the only state transition of a cube.
type Move struct {
	Axis  Axis      // Rotation axis
	Layer float64   // Layer coordinate, one of the cube's layer offsets
	Turn  Turn      // Quarter-turn direction
	Speed float64   // Animation speed multiplier, cosmetic (0 means 1)
	Time  time.Time // When the move occurred (optional)
}

// Notation returns the move as axis, signed layer and an optional prime for
// clockwise turns. Examples: x0, z+1, y-0.5', x+1.5
func (m Move) Notation() string {
	var b strings.Builder
	b.WriteString(m.Axis.String())
	if m.Layer > 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatFloat(m.Layer, 'f', -1, 64))
	if m.Turn == CW {
		b.WriteByte('\'')
	}
	return b.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	inv := m
	inv.Turn = -m.Turn
	return inv
}

// WithTime returns a copy of the move with the specified timestamp.
func (m Move) WithTime(t time.Time) Move {
	m.Time = t
	return m
}

// SpeedOrDefault returns the speed multiplier, treating zero as 1.
func (m Move) SpeedOrDefault() float64 {
	if m.Speed <= 0 {
		return 1
	}
	return m.Speed
}

// ParseMove parses notation produced by Notation. The layer is not checked
// against any cube size; RotateLayer does that.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	axis, err := ParseAxis(s[:1])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CCW
	rest := s[1:]
	if strings.HasSuffix(rest, "'") || strings.HasSuffix(rest, "`") {
		turn = CW
		rest = rest[:len(rest)-1]
	}

	layer, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return Move{Axis: axis, Layer: layer, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "x+1 y0' z-1"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
