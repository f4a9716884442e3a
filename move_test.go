package neoncube

import (
	"errors"
	"testing"
)

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{Axis: AxisX, Layer: 0, Turn: CCW}, "x0"},
		{Move{Axis: AxisZ, Layer: 1, Turn: CCW}, "z+1"},
		{Move{Axis: AxisY, Layer: -0.5, Turn: CW}, "y-0.5'"},
		{Move{Axis: AxisX, Layer: 1.5, Turn: CW}, "x+1.5'"},
	}
	for _, tt := range tests {
		if got := tt.move.Notation(); got != tt.want {
			t.Errorf("Notation() = %q, want %q", got, tt.want)
		}
		parsed, err := ParseMove(tt.want)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tt.want, err)
			continue
		}
		if parsed.Axis != tt.move.Axis || parsed.Layer != tt.move.Layer || parsed.Turn != tt.move.Turn {
			t.Errorf("ParseMove(%q) = %+v", tt.want, parsed)
		}
	}
}

func TestParseMoveAcceptsVariants(t *testing.T) {
	m, err := ParseMove(" Z-1` ")
	if err != nil {
		t.Fatal(err)
	}
	if m.Axis != AxisZ || m.Layer != -1 || m.Turn != CW {
		t.Errorf("got %+v", m)
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, s := range []string{"", "x", "w1", "x1.2.3", "x'", "xx"} {
		if _, err := ParseMove(s); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v", s, err)
		}
	}
	if _, err := ParseMoves("x0 bogus"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseMoves should reject the sequence, got %v", err)
	}
}

func TestMoveInverse(t *testing.T) {
	m := Move{Axis: AxisY, Layer: 1, Turn: CCW, Speed: 1.4}
	inv := m.Inverse()
	if inv.Turn != CW || inv.Axis != AxisY || inv.Layer != 1 || inv.Speed != 1.4 {
		t.Errorf("Inverse() = %+v", inv)
	}
	if inv.Inverse() != m {
		t.Error("double inverse should be the original move")
	}
}

func TestInvertMoves(t *testing.T) {
	moves, _ := ParseMoves("x0 y+1' z-1")
	if got := FormatMoves(InvertMoves(moves)); got != "z-1' y+1 x0'" {
		t.Errorf("InvertMoves = %q", got)
	}
	if FormatMoves(nil) != "" {
		t.Error("empty sequence should format as empty string")
	}
}

func TestSpeedOrDefault(t *testing.T) {
	if (Move{}).SpeedOrDefault() != 1 {
		t.Error("zero speed should default to 1")
	}
	if (Move{Speed: 1.6}).SpeedOrDefault() != 1.6 {
		t.Error("explicit speed should be kept")
	}
}

func TestTurnValid(t *testing.T) {
	for turn, want := range map[Turn]bool{CCW: true, CW: true, 0: false, 2: false, -2: false} {
		if turn.Valid() != want {
			t.Errorf("Turn(%d).Valid() = %v", turn, !want)
		}
	}
}
