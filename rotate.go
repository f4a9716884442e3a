package neoncube

import "fmt"

// RotateLayer turns the layer at coordinate on axis by one quarter turn in
// the given direction. Every selected cell moves to its rotated lattice
// point and its face slots are permuted to match its new orientation; the
// two slots parallel to the axis are untouched.
//
// The update is applied synchronously. Invalid input returns an error and
// leaves the cube unchanged.
func (c *Cube) RotateLayer(axis Axis, coordinate float64, turn Turn) error {
	if !axis.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}
	if !turn.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidTurn, turn)
	}
	d, err := c.doubled(coordinate)
	if err != nil {
		return err
	}
	c.rotate(axis, d, turn)
	return nil
}

// rotate applies a validated quarter turn to the layer at doubled
// coordinate d.
func (c *Cube) rotate(axis Axis, d int, turn Turn) {
	b, a2 := axis.others()
	for _, cell := range c.layer(axis, d) {
		pb, pc := cell.pos[b], cell.pos[a2]
		if turn == CCW {
			// b -> c, c -> -b
			cell.pos[b], cell.pos[a2] = -pc, pb
		} else {
			cell.pos[b], cell.pos[a2] = pc, -pb
		}
		cell.colors = permuteSlots(cell.colors, b, a2, turn)
	}
}

// permuteSlots cycles the four slots perpendicular to the rotation axis.
// For a CCW turn the colour facing +b ends up facing +c, +c goes to -b,
// -b to -c and -c to +b. CW is the reverse cycle.
func permuteSlots(in [6]ColorID, b, c Axis, turn Turn) [6]ColorID {
	out := in
	pb, nb := slotFor(b, 1), slotFor(b, -1)
	pc, nc := slotFor(c, 1), slotFor(c, -1)
	if turn == CCW {
		out[pc] = in[pb]
		out[nb] = in[pc]
		out[nc] = in[nb]
		out[pb] = in[nc]
	} else {
		out[pb] = in[pc]
		out[pc] = in[nb]
		out[nb] = in[nc]
		out[nc] = in[pb]
	}
	return out
}

// ApplyMove applies a single move.
func (c *Cube) ApplyMove(m Move) error {
	return c.RotateLayer(m.Axis, m.Layer, m.Turn)
}

// Apply applies a sequence of moves, stopping at the first invalid one.
func (c *Cube) Apply(moves ...Move) error {
	for i, m := range moves {
		if err := c.ApplyMove(m); err != nil {
			return fmt.Errorf("move %d (%s): %w", i, m.Notation(), err)
		}
	}
	return nil
}

// ApplyNotation parses and applies a space-separated move sequence.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}
