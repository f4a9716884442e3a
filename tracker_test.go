package neoncube

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestTracker(t *testing.T, size int, opts ...Option) *Tracker {
	t.Helper()
	c, err := NewCube(size, ThemeNeon)
	if err != nil {
		t.Fatal(err)
	}
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	return NewTracker(c, opts...)
}

func TestTrackerSolvedCallback(t *testing.T) {
	tr := newTestTracker(t, 3)
	fired := 0
	tr.SetSolvedCallback(func() { fired++ })

	m := Move{Axis: AxisX, Layer: 1, Turn: CCW}
	solved, err := tr.ApplyMove(m)
	if err != nil || solved {
		t.Fatalf("first move: solved=%v err=%v", solved, err)
	}
	solved, err = tr.ApplyMove(m.Inverse())
	if err != nil || !solved {
		t.Fatalf("undo move: solved=%v err=%v", solved, err)
	}
	if fired != 1 {
		t.Errorf("callback fired %d times", fired)
	}
	if tr.MoveCount() != 2 {
		t.Errorf("MoveCount() = %d, want 2", tr.MoveCount())
	}
	if got := FormatMoves(tr.Moves()); got != "x+1 x+1'" {
		t.Errorf("history = %q", got)
	}
}

func TestTrackerScrambleResetsCount(t *testing.T) {
	tr := newTestTracker(t, 4)
	tr.ApplyMove(Move{Axis: AxisY, Layer: 0.5, Turn: CW})

	seq := tr.Scramble(ScrambleMoves)
	if len(seq) != ScrambleMoves {
		t.Errorf("scramble returned %d moves", len(seq))
	}
	if tr.MoveCount() != 0 || len(tr.Moves()) != 0 {
		t.Errorf("scramble should clear counters, got %d moves", tr.MoveCount())
	}
	if tr.IsSolved() {
		t.Error("tracker cube should be scrambled")
	}
}

func TestTrackerInvalidLayerIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	tr := newTestTracker(t, 3, WithLogger(logger))
	before := snapshot(tr.Cube())

	_, err := tr.ApplyMove(Move{Axis: AxisZ, Layer: 0.5, Turn: CCW})
	if !errors.Is(err, ErrInvalidLayer) {
		t.Fatalf("error = %v", err)
	}
	if tr.MoveCount() != 0 {
		t.Error("rejected move should not be counted")
	}
	if !sameState(before, snapshot(tr.Cube())) {
		t.Error("rejected move should not change the cube")
	}
	if !strings.Contains(buf.String(), "ignoring move on invalid layer") {
		t.Errorf("expected a warning, log was %q", buf.String())
	}
}

func TestTrackerWithoutHistory(t *testing.T) {
	tr := newTestTracker(t, 2, WithMoveHistory(false))
	tr.ApplyMove(Move{Axis: AxisX, Layer: 0.5, Turn: CCW})
	if tr.MoveCount() != 1 {
		t.Errorf("MoveCount() = %d", tr.MoveCount())
	}
	if tr.Moves() != nil {
		t.Error("history should be empty when disabled")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := newTestTracker(t, 3)
	tr.ApplyMove(Move{Axis: AxisX, Layer: 0, Turn: CCW})

	fresh, _ := NewCube(5, ThemeTron)
	tr.Reset(fresh)
	if tr.Cube() != fresh || tr.MoveCount() != 0 || !tr.IsSolved() {
		t.Error("Reset should install the new cube and clear counters")
	}
	if !strings.Contains(tr.CubeString(), "F F F F F ") {
		t.Error("CubeString should render the new cube")
	}
}
