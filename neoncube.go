// Package neoncube implements the state and layer-rotation engine behind the
// Neon Cube arcade puzzle: an NxNxN twisty cube with idle-game progression.
//
// # Features
//
//   - Lattice cube model for any size N >= 1 (the game plays 3 to 5)
//   - Layer selection by axis and coordinate
//   - Quarter-turn layer rotations that permute positions and face slots
//   - Random scrambles with an injectable source
//   - Solved-state evaluation on logical colour ids
//
// # Quick Start
//
//	cube, err := neoncube.NewCube(3, neoncube.ThemeNeon)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Turn the front layer a quarter turn
//	cube.RotateLayer(neoncube.AxisZ, 1, neoncube.CCW)
//	fmt.Println("Solved:", cube.IsSolved()) // false
//
//	// Or from notation
//	cube.ApplyNotation("z+1'")
//	fmt.Println("Solved:", cube.IsSolved()) // true
//
// # Coordinates
//
// Cells sit on the lattice k - (N-1)/2 for k in [0, N) on every axis, so a
// 4x4x4 cube uses -1.5, -0.5, 0.5 and 1.5. Internally positions are stored
// doubled so even sizes stay on an integer grid.
//
// # Turn direction
//
// CCW (+1) is a right-hand-rule quarter turn: counter-clockwise when viewed
// from the positive end of the axis. CW (-1) is its inverse.
package neoncube
