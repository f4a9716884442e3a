package neoncube

import (
	"errors"
	"strings"
	"testing"
)

// latticeComplete reports whether the cell positions are exactly the N×N×N
// lattice with no duplicates.
func latticeComplete(t *testing.T, c *Cube) bool {
	t.Helper()
	n := c.Size()
	if len(c.Cells()) != n*n*n {
		t.Errorf("expected %d cells, got %d", n*n*n, len(c.Cells()))
		return false
	}
	seen := make(map[Coord]bool)
	for _, cell := range c.Cells() {
		p := cell.Grid()
		for _, v := range p {
			if v < -(n-1) || v > n-1 || (v+n-1)%2 != 0 {
				t.Errorf("cell %d off lattice at %v", cell.ID(), p)
				return false
			}
		}
		if seen[p] {
			t.Errorf("duplicate position %v", p)
			return false
		}
		seen[p] = true
	}
	return true
}

func TestNewCubeIsSolved(t *testing.T) {
	for _, theme := range []Theme{ThemeNeon, ThemeTron, ThemeMatrix} {
		for size := 1; size <= 6; size++ {
			c, err := NewCube(size, theme)
			if err != nil {
				t.Fatalf("NewCube(%d, %s): %v", size, theme.Name, err)
			}
			if !c.IsSolved() {
				t.Errorf("new %dx%dx%d %s cube should be solved", size, size, size, theme.Name)
			}
			latticeComplete(t, c)
		}
	}
}

func TestNewCubeRejectsBadSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		if _, err := NewCube(size, ThemeNeon); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewCube(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestNewCubeCentredOnOrigin(t *testing.T) {
	c, _ := NewCube(4, ThemeNeon)
	var sum [3]int
	for _, cell := range c.Cells() {
		for i, v := range cell.Grid() {
			sum[i] += v
		}
	}
	if sum != [3]int{} {
		t.Errorf("lattice should be centred on the origin, coordinate sums %v", sum)
	}

	corner, ok := c.Cell(Coord{3, 3, 3})
	if !ok {
		t.Fatal("missing corner at (1.5,1.5,1.5)")
	}
	if got := corner.Position(); got != [3]float64{1.5, 1.5, 1.5} {
		t.Errorf("corner position = %v", got)
	}
}

func TestNewCubeHomeSlots(t *testing.T) {
	c, _ := NewCube(3, ThemeTron)
	for _, cell := range c.Cells() {
		for _, s := range Slots {
			if cell.Color(s) != ColorID(s) {
				t.Fatalf("cell %d slot %s has %s", cell.ID(), s, cell.Color(s))
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c, _ := NewCube(3, ThemeNeon)
	clone := c.Clone()
	if err := c.RotateLayer(AxisX, 1, CCW); err != nil {
		t.Fatal(err)
	}
	if !clone.IsSolved() {
		t.Error("rotating the original should not affect the clone")
	}
	if c.IsSolved() {
		t.Error("original should be scrambled")
	}
}

func TestFaceCellsCoverFace(t *testing.T) {
	c, _ := NewCube(4, ThemeNeon)
	for _, face := range Slots {
		grid := c.FaceCells(face)
		seen := make(map[int]bool)
		for r, row := range grid {
			for col, cell := range row {
				if cell == nil {
					t.Fatalf("%s face has a hole at %d,%d", face, r, col)
				}
				seen[cell.ID()] = true
			}
		}
		if len(seen) != 16 {
			t.Errorf("%s face should have 16 distinct cells, got %d", face, len(seen))
		}
	}
}

func TestFaceCellsOrientation(t *testing.T) {
	c, _ := NewCube(3, ThemeNeon)

	// Front face top-left is the cell at x=-1, y=+1 on z=+1.
	front := c.FaceCells(SlotPosZ)
	if got := front[0][0].Grid(); got != (Coord{-2, 2, 2}) {
		t.Errorf("front top-left = %v", got)
	}

	// Top face bottom row touches the front.
	top := c.FaceCells(SlotPosY)
	if got := top[2][1].Grid(); got != (Coord{0, 2, 2}) {
		t.Errorf("top bottom-middle = %v", got)
	}
}

func TestString(t *testing.T) {
	c, _ := NewCube(3, ThemeNeon)
	s := c.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d:\n%s", len(lines), s)
	}
	if lines[0] != "      U U U " {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[4] != "L L L F F F R R R B B B " {
		t.Errorf("middle line = %q", lines[4])
	}
	for _, letter := range []string{"U", "D", "L", "R", "F", "B"} {
		if n := strings.Count(s, letter+" "); n != 9 {
			t.Errorf("expected 9 %s stickers, got %d", letter, n)
		}
	}
}

func TestCellEdgeClassification(t *testing.T) {
	c, _ := NewCube(3, ThemeNeon)
	var corners, edges, centers, core int
	for _, cell := range c.Cells() {
		switch cell.outerCount(3) {
		case 3:
			corners++
		case 2:
			edges++
		case 1:
			centers++
		case 0:
			core++
		}
		if cell.IsEdge(3) != (cell.outerCount(3) >= 2) {
			t.Errorf("IsEdge mismatch for %v", cell.Grid())
		}
	}
	if corners != 8 || edges != 12 || centers != 6 || core != 1 {
		t.Errorf("got %d corners %d edges %d centers %d core", corners, edges, centers, core)
	}
}
