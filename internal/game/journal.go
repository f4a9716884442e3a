package game

import (
	"time"

	"github.com/SeamusWaldron/neoncube"
)

// SolveRecord describes one completed solve.
type SolveRecord struct {
	SessionID string
	Size      int
	Mode      Mode
	Theme     string
	Moves     int
	Points    float64
	Prestige  int
	Scramble  string
	Solution  []neoncube.Move // User moves in order, with their timestamps
	Duration  time.Duration
	SolvedAt  time.Time
}

// Journal receives finished solves and newly unlocked achievements.
// Failures are logged by the session and never interrupt play.
type Journal interface {
	RecordSolve(rec SolveRecord) error
	RecordAchievement(sessionID, key string, at time.Time) error
}
