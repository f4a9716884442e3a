package neoncube

import (
	"fmt"
	"math"
)

// LayerTolerance is how far, in lattice units, a requested coordinate may
// sit from a cell's coordinate and still select it.
const LayerTolerance = 0.1

// LayerOffset returns the coordinate of layer k, k - (N-1)/2.
func LayerOffset(size, k int) float64 {
	return float64(2*k-(size-1)) / 2
}

// LayerOffsets returns the N valid layer coordinates in ascending order.
func (c *Cube) LayerOffsets() []float64 {
	offsets := make([]float64, c.size)
	for k := range offsets {
		offsets[k] = LayerOffset(c.size, k)
	}
	return offsets
}

// SelectLayer returns every cell whose coordinate on axis is within
// tolerance of coordinate. For a valid layer offset this is exactly the N²
// cells of that slice; for anything else it is empty.
func SelectLayer(cells []*Cell, axis Axis, coordinate, tolerance float64) []*Cell {
	if !axis.Valid() {
		return nil
	}
	var layer []*Cell
	for _, cell := range cells {
		if math.Abs(float64(cell.pos[axis])/2-coordinate) < tolerance {
			layer = append(layer, cell)
		}
	}
	return layer
}

// Layer selects a slice of the cube using LayerTolerance.
func (c *Cube) Layer(axis Axis, coordinate float64) []*Cell {
	return SelectLayer(c.cells, axis, coordinate, LayerTolerance)
}

// layer selects by doubled coordinate.
func (c *Cube) layer(axis Axis, doubled int) []*Cell {
	layer := make([]*Cell, 0, c.size*c.size)
	for _, cell := range c.cells {
		if cell.pos[axis] == doubled {
			layer = append(layer, cell)
		}
	}
	return layer
}

// LayerIndex maps a coordinate to its layer index k in [0, N). Coordinates
// further than LayerTolerance from every offset yield ErrInvalidLayer.
func (c *Cube) LayerIndex(coordinate float64) (int, error) {
	d, err := c.doubled(coordinate)
	if err != nil {
		return 0, err
	}
	return (d + c.size - 1) / 2, nil
}

// doubled converts a coordinate to the doubled integer grid, rejecting
// anything that is not within tolerance of a valid layer.
func (c *Cube) doubled(coordinate float64) (int, error) {
	if math.IsNaN(coordinate) || math.IsInf(coordinate, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidLayer, coordinate)
	}
	d := int(math.Round(2 * coordinate))
	if math.Abs(float64(d)/2-coordinate) >= LayerTolerance {
		return 0, fmt.Errorf("%w: %v is off the lattice", ErrInvalidLayer, coordinate)
	}
	// Valid doubled values share parity with size-1.
	if (d+c.size-1)%2 != 0 || d < -(c.size-1) || d > c.size-1 {
		return 0, fmt.Errorf("%w: %v for size %d", ErrInvalidLayer, coordinate, c.size)
	}
	return d, nil
}

// SnapCoordinate returns the valid layer offset nearest to v for a cube of
// the given size. When v was further than LayerTolerance from that offset the
// snapped value is still returned together with an error wrapping
// ErrGeometryDrift, which callers may log and otherwise ignore.
func SnapCoordinate(v float64, size int) (float64, error) {
	if size < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	k := int(math.Round(v + float64(size-1)/2))
	if k < 0 {
		k = 0
	}
	if k > size-1 {
		k = size - 1
	}
	snapped := LayerOffset(size, k)
	if math.Abs(snapped-v) >= LayerTolerance {
		return snapped, fmt.Errorf("%w: %v snapped to %v", ErrGeometryDrift, v, snapped)
	}
	return snapped, nil
}
