package neoncube

import "fmt"

// Axis is one of the three rotation axes.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Valid reports whether a is x, y or z.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// ParseAxis parses "x", "y" or "z" (either case).
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
	}
}

// others returns the two axes perpendicular to a in cyclic order, so that a
// positive quarter turn about a carries the first onto the second.
func (a Axis) others() (Axis, Axis) {
	return (a + 1) % 3, (a + 2) % 3
}

// Slot is one of a cell's six face attachments, named by the world direction
// it faces. Slot order is fixed: +X, -X, +Y, -Y, +Z, -Z.
type Slot int

const (
	SlotPosX Slot = 0 // right
	SlotNegX Slot = 1 // left
	SlotPosY Slot = 2 // top
	SlotNegY Slot = 3 // bottom
	SlotPosZ Slot = 4 // front
	SlotNegZ Slot = 5 // back
)

// Slots lists every slot in canonical order.
var Slots = [6]Slot{SlotPosX, SlotNegX, SlotPosY, SlotNegY, SlotPosZ, SlotNegZ}

func (s Slot) String() string {
	switch s {
	case SlotPosX:
		return "right"
	case SlotNegX:
		return "left"
	case SlotPosY:
		return "top"
	case SlotNegY:
		return "bottom"
	case SlotPosZ:
		return "front"
	case SlotNegZ:
		return "back"
	default:
		return "?"
	}
}

// Axis returns the axis the slot is perpendicular to.
func (s Slot) Axis() Axis {
	return Axis(s / 2)
}

// Sign returns +1 for the positive slot of an axis and -1 for the negative.
func (s Slot) Sign() int {
	if s%2 == 0 {
		return 1
	}
	return -1
}

func slotFor(a Axis, sign int) Slot {
	if sign > 0 {
		return Slot(2 * a)
	}
	return Slot(2*a + 1)
}

// ColorID is the logical identity of a face colour. It names the face the
// sticker belongs to when solved and is what the solve check compares.
// Rendered colours come from the Theme and never feed back into it.
type ColorID byte

const (
	ColorRight  ColorID = ColorID(SlotPosX)
	ColorLeft   ColorID = ColorID(SlotNegX)
	ColorTop    ColorID = ColorID(SlotPosY)
	ColorBottom ColorID = ColorID(SlotNegY)
	ColorFront  ColorID = ColorID(SlotPosZ)
	ColorBack   ColorID = ColorID(SlotNegZ)
)

func (c ColorID) String() string {
	switch c {
	case ColorRight:
		return "R"
	case ColorLeft:
		return "L"
	case ColorTop:
		return "U"
	case ColorBottom:
		return "D"
	case ColorFront:
		return "F"
	case ColorBack:
		return "B"
	default:
		return "?"
	}
}

// Coord is a lattice position stored doubled: the cell at x = -1.5 has
// Coord[AxisX] == -3. Doubling keeps half-integer offsets of even sizes exact.
type Coord [3]int

// Float returns the lattice-unit position.
func (c Coord) Float() [3]float64 {
	return [3]float64{float64(c[0]) / 2, float64(c[1]) / 2, float64(c[2]) / 2}
}

func (c Coord) String() string {
	p := c.Float()
	return fmt.Sprintf("(%g,%g,%g)", p[0], p[1], p[2])
}

// Cell is one unit cube of the puzzle.
type Cell struct {
	id     int
	pos    Coord
	colors [6]ColorID
}

// ID is stable for the lifetime of the cube; renderers use it to follow a
// cell across moves.
func (c *Cell) ID() int { return c.id }

// Grid returns the doubled lattice coordinate.
func (c *Cell) Grid() Coord { return c.pos }

// Position returns the grid position in lattice units.
func (c *Cell) Position() [3]float64 { return c.pos.Float() }

// Color returns the colour currently facing the slot's world direction.
func (c *Cell) Color(s Slot) ColorID { return c.colors[s] }

// Colors returns all six slot colours in slot order.
func (c *Cell) Colors() [6]ColorID { return c.colors }

// outerCount returns how many of the cell's coordinates sit on the shell.
func (c *Cell) outerCount(size int) int {
	n := 0
	for _, v := range c.pos {
		if v == size-1 || v == -(size-1) {
			n++
		}
	}
	return n
}

// IsEdge reports whether the cell lies on at least two outer faces
// (edges and corners).
func (c *Cell) IsEdge(size int) bool {
	return c.outerCount(size) >= 2
}

// IsOuter reports whether any face of the cell is visible.
func (c *Cell) IsOuter(size int) bool {
	return c.outerCount(size) >= 1
}
