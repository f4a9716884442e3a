package anim

import (
	"math"
	"testing"
	"time"

	"github.com/SeamusWaldron/neoncube"
)

func near(a, b [3]float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestRotationStartsAtPreviousPose(t *testing.T) {
	for _, turn := range []neoncube.Turn{neoncube.CCW, neoncube.CW} {
		cube, _ := neoncube.NewCube(3, neoncube.ThemeNeon)
		before := make(map[int][3]float64)
		for _, cell := range cube.Cells() {
			before[cell.ID()] = cell.Position()
		}

		m := neoncube.Move{Axis: neoncube.AxisY, Layer: 1, Turn: turn}
		if err := cube.ApplyMove(m); err != nil {
			t.Fatal(err)
		}

		r := NewRotation(cube, m)
		start := r.Poses()
		if len(start) != 9 {
			t.Fatalf("expected 9 animated cells, got %d", len(start))
		}
		for _, p := range start {
			if !near(p.Position, before[p.ID]) {
				t.Errorf("turn %d: cell %d starts at %v, was at %v", turn, p.ID, p.Position, before[p.ID])
			}
		}

		r.Advance(BaseDuration)
		for _, p := range r.Poses() {
			cell := findCell(cube, p.ID)
			if !near(p.Position, cell.Position()) {
				t.Errorf("cell %d ends at %v, model has %v", p.ID, p.Position, cell.Position())
			}
		}
	}
}

func findCell(cube *neoncube.Cube, id int) *neoncube.Cell {
	for _, cell := range cube.Cells() {
		if cell.ID() == id {
			return cell
		}
	}
	return nil
}

func TestRotationDoesNotTouchModel(t *testing.T) {
	cube, _ := neoncube.NewCube(4, neoncube.ThemeNeon)
	m := neoncube.Move{Axis: neoncube.AxisX, Layer: -1.5, Turn: neoncube.CW}
	cube.ApplyMove(m)
	want := cube.String()

	r := NewRotation(cube, m)
	r.Advance(BaseDuration / 3)
	r.Poses()
	if cube.String() != want {
		t.Error("animation must not mutate the cube")
	}
}

func TestRotationSpeedScalesDuration(t *testing.T) {
	cube, _ := neoncube.NewCube(3, neoncube.ThemeNeon)
	r := NewRotation(cube, neoncube.Move{Axis: neoncube.AxisZ, Layer: 0, Turn: neoncube.CCW, Speed: 2})
	if r.Duration() != 100*time.Millisecond {
		t.Errorf("duration at speed 2 = %v", r.Duration())
	}
	if r.Advance(50 * time.Millisecond) {
		t.Error("should not be done halfway")
	}
	if math.Abs(r.Progress()-0.5) > 1e-9 {
		t.Errorf("progress = %v", r.Progress())
	}
	if math.Abs(r.Angle()+math.Pi/4) > 1e-9 {
		t.Errorf("halfway angle = %v", r.Angle())
	}
	if !r.Advance(time.Second) || r.Progress() != 1 || r.Angle() != 0 {
		t.Error("overshoot should clamp to the final pose")
	}
}

func TestFrames(t *testing.T) {
	cube, _ := neoncube.NewCube(3, neoncube.ThemeNeon)
	m := neoncube.Move{Axis: neoncube.AxisX, Layer: 1, Turn: neoncube.CCW}
	cube.ApplyMove(m)

	frames := Frames(cube, m, 60)
	if len(frames) != 13 {
		t.Fatalf("expected 13 frames at 60fps over 200ms, got %d", len(frames))
	}
	if frames[0].T != 0 || frames[len(frames)-1].T != 1 {
		t.Errorf("frames span %v..%v", frames[0].T, frames[len(frames)-1].T)
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].T < frames[i-1].T {
			t.Errorf("frame %d goes backwards", i)
		}
	}
}

func TestPlayer(t *testing.T) {
	cube, _ := neoncube.NewCube(3, neoncube.ThemeNeon)
	var p Player
	p.Advance(time.Second)
	if p.Active() {
		t.Fatal("idle player should stay idle")
	}

	m := neoncube.Move{Axis: neoncube.AxisX, Layer: 0, Turn: neoncube.CCW}
	cube.ApplyMove(m)
	p.Start(cube, m)
	p.Advance(BaseDuration / 2)
	if !p.Active() || p.Current() == nil {
		t.Fatal("turn should still be playing")
	}

	// A second move replaces the first immediately.
	m2 := neoncube.Move{Axis: neoncube.AxisZ, Layer: 1, Turn: neoncube.CW}
	cube.ApplyMove(m2)
	p.Start(cube, m2)
	if p.Current().Move() != m2 || p.Current().Progress() != 0 {
		t.Error("new turn should start from the beginning")
	}

	p.Advance(BaseDuration)
	if p.Active() {
		t.Error("finished turn should clear")
	}
}
