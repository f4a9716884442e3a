package storage

import (
	"time"

	"github.com/SeamusWaldron/neoncube/internal/game"
)

// Journal records a session's solves and achievements.
type Journal struct {
	Solves       *SolveRepository
	Achievements *AchievementRepository
}

// NewJournal creates a journal backed by db.
func NewJournal(db *DB) *Journal {
	return &Journal{
		Solves:       NewSolveRepository(db),
		Achievements: NewAchievementRepository(db),
	}
}

// RecordSolve implements game.Journal.
func (j *Journal) RecordSolve(rec game.SolveRecord) error {
	_, err := j.Solves.Create(rec)
	return err
}

// RecordAchievement implements game.Journal.
func (j *Journal) RecordAchievement(sessionID, key string, at time.Time) error {
	return j.Achievements.Create(sessionID, key, at)
}

var _ game.Journal = (*Journal)(nil)
