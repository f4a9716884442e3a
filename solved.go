package neoncube

// FaceColors returns, for every cell on the outer face, the colour in the
// slot that points out of that face.
func (c *Cube) FaceColors(face Slot) []ColorID {
	layer := c.layer(face.Axis(), face.Sign()*(c.size-1))
	colors := make([]ColorID, len(layer))
	for i, cell := range layer {
		colors[i] = cell.colors[face]
	}
	return colors
}

// FaceUniform reports whether the outer face shows a single colour.
func (c *Cube) FaceUniform(face Slot) bool {
	colors := c.FaceColors(face)
	for _, col := range colors[1:] {
		if col != colors[0] {
			return false
		}
	}
	return true
}

// IsSolved returns true if all six outer faces are uniform. It reads only
// logical colour ids and never mutates the cube.
func (c *Cube) IsSolved() bool {
	for _, face := range Slots {
		if !c.FaceUniform(face) {
			return false
		}
	}
	return true
}
