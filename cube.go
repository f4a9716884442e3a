package neoncube

import (
	"fmt"
	"strings"
)

// Cube is an NxNxN puzzle: exactly N³ cells, one per lattice point.
type Cube struct {
	size  int
	theme Theme
	cells []*Cell
}

// NewCube builds a solved cube. Cells are laid out on every lattice point
// centred on the origin and each receives the six theme colours on their
// home slots (+X right, -X left, +Y top, -Y bottom, +Z front, -Z back).
func NewCube(size int, theme Theme) (*Cube, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	c := &Cube{
		size:  size,
		theme: theme,
		cells: make([]*Cell, 0, size*size*size),
	}

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			for k := 0; k < size; k++ {
				cell := &Cell{
					id:  len(c.cells),
					pos: Coord{2*i - (size - 1), 2*j - (size - 1), 2*k - (size - 1)},
				}
				for _, s := range Slots {
					cell.colors[s] = ColorID(s)
				}
				c.cells = append(c.cells, cell)
			}
		}
	}

	return c, nil
}

// Size returns N.
func (c *Cube) Size() int { return c.size }

// Theme returns the theme the cube was built with.
func (c *Cube) Theme() Theme { return c.theme }

// Cells returns the cells. The slice is shared; callers must not mutate
// the cells directly.
func (c *Cube) Cells() []*Cell { return c.cells }

// Cell returns the cell at the given doubled coordinate.
func (c *Cube) Cell(pos Coord) (*Cell, bool) {
	for _, cell := range c.cells {
		if cell.pos == pos {
			return cell, true
		}
	}
	return nil, false
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{
		size:  c.size,
		theme: c.theme,
		cells: make([]*Cell, len(c.cells)),
	}
	for i, cell := range c.cells {
		cp := *cell
		clone.cells[i] = &cp
	}
	return clone
}

// faceLayout describes how a face is unfolded for display: which axis runs
// along the columns and rows and in which direction.
type faceLayout struct {
	colAxis Axis
	colSign int
	rowAxis Axis
	rowSign int
}

// Faces are viewed from outside with +Y up, except top and bottom which are
// viewed with the front edge towards the middle of the net.
var faceLayouts = [6]faceLayout{
	SlotPosX: {AxisZ, -1, AxisY, -1},
	SlotNegX: {AxisZ, 1, AxisY, -1},
	SlotPosY: {AxisX, 1, AxisZ, 1},
	SlotNegY: {AxisX, 1, AxisZ, -1},
	SlotPosZ: {AxisX, 1, AxisY, -1},
	SlotNegZ: {AxisX, -1, AxisY, -1},
}

// FaceCells returns the cells of an outer face as an N×N grid in display
// order (row 0 at the top).
func (c *Cube) FaceCells(face Slot) [][]*Cell {
	n := c.size
	grid := make([][]*Cell, n)
	for i := range grid {
		grid[i] = make([]*Cell, n)
	}

	layout := faceLayouts[face]
	for _, cell := range c.layer(face.Axis(), face.Sign()*(n-1)) {
		col := (layout.colSign*cell.pos[layout.colAxis] + n - 1) / 2
		row := (layout.rowSign*cell.pos[layout.rowAxis] + n - 1) / 2
		grid[row][col] = cell
	}
	return grid
}

// String returns the unfolded net:
//
//	  U
//	L F R B
//	  D
func (c *Cube) String() string {
	var b strings.Builder
	n := c.size
	pad := strings.Repeat("  ", n)

	var grids [6][][]*Cell
	for _, face := range Slots {
		grids[face] = c.FaceCells(face)
	}

	writeRow := func(face Slot, row int) {
		for _, cell := range grids[face][row] {
			b.WriteString(cell.Color(face).String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < n; row++ {
		b.WriteString(pad)
		writeRow(SlotPosY, row)
		b.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		for _, face := range []Slot{SlotNegX, SlotPosZ, SlotPosX, SlotNegZ} {
			writeRow(face, row)
		}
		b.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		b.WriteString(pad)
		writeRow(SlotNegY, row)
		b.WriteString("\n")
	}

	return b.String()
}
