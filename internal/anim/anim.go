// Package anim interpolates a finished layer turn for display. The cube has
// already been updated when an animation starts; frames are derived from the
// final positions and never written back.
package anim

import (
	"math"
	"time"

	"github.com/SeamusWaldron/neoncube"
)

// BaseDuration is the length of a turn at speed 1.
const BaseDuration = 200 * time.Millisecond

// CellPose is where a cell is drawn at some point in a turn.
type CellPose struct {
	ID       int        `json:"id"`
	Position [3]float64 `json:"position"`
}

// Frame is one sample of a turn.
type Frame struct {
	T     float64    `json:"t"`
	Angle float64    `json:"angle"`
	Cells []CellPose `json:"cells"`
}

// Rotation animates one move.
type Rotation struct {
	move     neoncube.Move
	final    []CellPose
	duration time.Duration
	elapsed  time.Duration
}

// NewRotation captures the turned layer from cube, which must already
// reflect m.
func NewRotation(cube *neoncube.Cube, m neoncube.Move) *Rotation {
	layer := cube.Layer(m.Axis, m.Layer)
	final := make([]CellPose, len(layer))
	for i, cell := range layer {
		final[i] = CellPose{ID: cell.ID(), Position: cell.Position()}
	}

	return &Rotation{
		move:     m,
		final:    final,
		duration: time.Duration(float64(BaseDuration) / m.SpeedOrDefault()),
	}
}

// Move returns the move being animated.
func (r *Rotation) Move() neoncube.Move {
	return r.move
}

// Duration returns the total length of the turn.
func (r *Rotation) Duration() time.Duration {
	return r.duration
}

// Advance moves the animation forward and reports whether it has finished.
func (r *Rotation) Advance(d time.Duration) bool {
	r.elapsed += d
	if r.elapsed > r.duration {
		r.elapsed = r.duration
	}
	return r.Done()
}

// Done reports whether the turn has reached its final pose.
func (r *Rotation) Done() bool {
	return r.elapsed >= r.duration
}

// Progress is the fraction of the turn completed, in [0, 1].
func (r *Rotation) Progress() float64 {
	if r.duration <= 0 {
		return 1
	}
	return float64(r.elapsed) / float64(r.duration)
}

// Angle is how far, in radians, the layer is drawn from its final pose.
// It starts at minus a quarter turn and reaches zero.
func (r *Rotation) Angle() float64 {
	return -(1 - r.Progress()) * float64(r.move.Turn) * math.Pi / 2
}

// Poses returns the layer's cells at the current progress.
func (r *Rotation) Poses() []CellPose {
	return r.posesAt(r.Angle())
}

// Frame samples the current progress.
func (r *Rotation) Frame() Frame {
	return Frame{T: r.Progress(), Angle: r.Angle(), Cells: r.Poses()}
}

func (r *Rotation) posesAt(angle float64) []CellPose {
	b, c := perpendicular(r.move.Axis)
	sin, cos := math.Sincos(angle)

	poses := make([]CellPose, len(r.final))
	for i, p := range r.final {
		pos := p.Position
		pb, pc := pos[b], pos[c]
		pos[b] = pb*cos - pc*sin
		pos[c] = pb*sin + pc*cos
		poses[i] = CellPose{ID: p.ID, Position: pos}
	}
	return poses
}

// perpendicular returns the two axes orthogonal to a in the order that
// makes a positive angle a right-handed turn about a.
func perpendicular(a neoncube.Axis) (int, int) {
	return (int(a) + 1) % 3, (int(a) + 2) % 3
}

// Frames samples a whole turn at fps frames per second, first and last
// pose included.
func Frames(cube *neoncube.Cube, m neoncube.Move, fps int) []Frame {
	r := NewRotation(cube, m)
	if fps <= 0 {
		fps = 60
	}
	n := int((r.duration*time.Duration(fps) + time.Second - 1) / time.Second)
	if n < 1 {
		n = 1
	}
	step := r.duration / time.Duration(n)

	frames := make([]Frame, 0, n+1)
	frames = append(frames, r.Frame())
	for i := 0; i < n; i++ {
		if i == n-1 {
			r.elapsed = r.duration
		} else {
			r.Advance(step)
		}
		frames = append(frames, r.Frame())
	}
	return frames
}
