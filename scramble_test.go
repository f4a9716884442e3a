package neoncube

import (
	"math/rand"
	"testing"
)

func TestScrambleBreaksSolved(t *testing.T) {
	for size := 2; size <= 5; size++ {
		for seed := int64(1); seed <= 5; seed++ {
			c, _ := NewCube(size, ThemeNeon)
			moves := c.Scramble(rand.New(rand.NewSource(seed)), ScrambleMoves)
			if len(moves) != ScrambleMoves {
				t.Errorf("expected %d moves, got %d", ScrambleMoves, len(moves))
			}
			if c.IsSolved() {
				t.Errorf("size %d seed %d: cube still solved after scramble %s", size, seed, FormatMoves(moves))
			}
			latticeComplete(t, c)
		}
	}
}

func TestScrambleNonPositiveLength(t *testing.T) {
	for _, n := range []int{0, -1, -20} {
		c, _ := NewCube(3, ThemeNeon)
		if moves := c.Scramble(rand.New(rand.NewSource(1)), n); moves != nil {
			t.Errorf("Scramble(%d) = %v, want nil", n, moves)
		}
		if !c.IsSolved() {
			t.Errorf("Scramble(%d) should leave the cube alone", n)
		}
	}
}

func TestScrambleUsesValidMoves(t *testing.T) {
	c, _ := NewCube(4, ThemeNeon)
	moves := c.Scramble(rand.New(rand.NewSource(3)), 200)

	axes := make(map[Axis]int)
	turns := make(map[Turn]int)
	layers := make(map[float64]int)
	for _, m := range moves {
		if _, err := c.LayerIndex(m.Layer); err != nil {
			t.Fatalf("scramble produced invalid layer %v", m.Layer)
		}
		if !m.Axis.Valid() || !m.Turn.Valid() {
			t.Fatalf("scramble produced invalid move %+v", m)
		}
		axes[m.Axis]++
		turns[m.Turn]++
		layers[m.Layer]++
	}
	if len(axes) != 3 || len(turns) != 2 || len(layers) != 4 {
		t.Errorf("200 moves should cover every axis, turn and layer: %v %v %v", axes, turns, layers)
	}
}

func TestScrambleIsReproducible(t *testing.T) {
	a, _ := NewCube(3, ThemeNeon)
	b, _ := NewCube(3, ThemeNeon)
	ma := a.Scramble(rand.New(rand.NewSource(11)), 30)
	mb := b.Scramble(rand.New(rand.NewSource(11)), 30)
	if FormatMoves(ma) != FormatMoves(mb) {
		t.Errorf("same seed gave different scrambles:\n%s\n%s", FormatMoves(ma), FormatMoves(mb))
	}
	if !sameState(snapshot(a), snapshot(b)) {
		t.Error("same seed gave different cube states")
	}
}

func TestScrambleThenInverseSolves(t *testing.T) {
	c, _ := NewCube(5, ThemeMatrix)
	moves := c.Scramble(rand.New(rand.NewSource(5)), 40)
	if err := c.Apply(InvertMoves(moves)...); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("undoing the scramble should solve the cube")
	}
}

func TestScrambleNilSource(t *testing.T) {
	c, _ := NewCube(3, ThemeNeon)
	if moves := c.Scramble(nil, 5); len(moves) != 5 {
		t.Errorf("expected 5 moves, got %d", len(moves))
	}
}
