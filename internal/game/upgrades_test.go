package game

import (
	"errors"
	"math"
	"testing"
)

func TestMoveCost(t *testing.T) {
	tests := []struct {
		efficiency int
		want       float64
	}{
		{0, 1},
		{1, 0.9},
		{5, 0.5},
		{9, 0.1},
		{10, MinMoveCost},
		{25, MinMoveCost},
	}
	for _, tt := range tests {
		got := Upgrades{Efficiency: tt.efficiency}.MoveCost()
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("efficiency %d: cost %v, want %v", tt.efficiency, got, tt.want)
		}
	}
}

func TestRotationSpeed(t *testing.T) {
	if got := (Upgrades{Speed: 3}).RotationSpeed(); math.Abs(got-1.6) > 1e-9 {
		t.Errorf("RotationSpeed() = %v, want 1.6", got)
	}
}

func TestFractionalMovesFloor(t *testing.T) {
	s := &Session{moveCount: 0.9 * 3}
	if s.displayMoves() != 2 {
		t.Errorf("2.7 moves should display as 2, got %d", s.displayMoves())
	}
	s.moveCount = 0.1 * 10
	if s.displayMoves() != 1 {
		t.Errorf("ten 0.1 moves should display as 1, got %d", s.displayMoves())
	}
}

func TestAchievementPredicates(t *testing.T) {
	tests := []struct {
		facts solveFacts
		want  []string
	}{
		{solveFacts{moves: 19.5, prestige: 1, size: 3, mode: ModeStandard}, []string{AchievementQuickSolve}},
		{solveFacts{moves: 20, prestige: 2, size: 4, mode: ModeTimed}, []string{AchievementMasterHacker}},
		{solveFacts{moves: 40, prestige: 1, size: 5, mode: ModeChallenge}, []string{AchievementFlawless}},
		{solveFacts{moves: 40, prestige: 1, size: 5, mode: ModeStandard}, nil},
	}
	for _, tt := range tests {
		var got []string
		for _, a := range Achievements {
			if tt.facts.earned(a.Key) {
				got = append(got, a.Key)
			}
		}
		if len(got) != len(tt.want) {
			t.Errorf("%+v earned %v, want %v", tt.facts, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%+v earned %v, want %v", tt.facts, got, tt.want)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("endless"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("unknown mode error = %v", err)
	}
	if ModeChallenge.Next() != ModeStandard || ModeStandard.Next() != ModeTimed {
		t.Error("Next should cycle through the modes")
	}
}
