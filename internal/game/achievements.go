package game

// Achievement is a one-time award checked after each solve.
type Achievement struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Achievement keys.
const (
	AchievementQuickSolve   = "quickSolve"
	AchievementMasterHacker = "masterHacker"
	AchievementFlawless     = "flawless"
)

// Achievements lists every achievement in display order.
var Achievements = []Achievement{
	{AchievementQuickSolve, "Quick Solve", "Solve in <20 moves"},
	{AchievementMasterHacker, "Master Hacker", "Reach Prestige 2"},
	{AchievementFlawless, "Flawless", "Solve 5x5x5 in Challenge mode"},
}

// AchievementStatus pairs an achievement with whether it is unlocked.
type AchievementStatus struct {
	Achievement
	Achieved bool `json:"achieved"`
}

// solveFacts is what the achievement predicates look at. Size is the size
// that was just solved, before any growth.
type solveFacts struct {
	moves    float64
	prestige int
	size     int
	mode     Mode
}

func (f solveFacts) earned(key string) bool {
	switch key {
	case AchievementQuickSolve:
		return f.moves < 20
	case AchievementMasterHacker:
		return f.prestige >= 2
	case AchievementFlawless:
		return f.size == 5 && f.mode == ModeChallenge
	default:
		return false
	}
}
