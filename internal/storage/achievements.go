package storage

import (
	"fmt"
	"time"
)

// Unlock is one achievement unlocked in a session.
type Unlock struct {
	SessionID  string
	Key        string
	UnlockedAt time.Time
}

// AchievementRepository provides access to the achievements table.
type AchievementRepository struct {
	db *DB
}

// NewAchievementRepository creates a new achievement repository.
func NewAchievementRepository(db *DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// Create records an unlock. The session row is created if the achievement
// arrives before the session's first solve is stored. Repeats are ignored.
func (r *AchievementRepository) Create(sessionID, key string, at time.Time) error {
	ts := at.UTC().Format(time.RFC3339)

	if _, err := r.db.Exec(`
		INSERT OR IGNORE INTO sessions (session_id, started_at) VALUES (?, ?)
	`, sessionID, ts); err != nil {
		return fmt.Errorf("failed to register session: %w", err)
	}

	_, err := r.db.Exec(`
		INSERT OR IGNORE INTO achievements (session_id, achievement_key, unlocked_at)
		VALUES (?, ?, ?)
	`, sessionID, key, ts)
	if err != nil {
		return fmt.Errorf("failed to record achievement: %w", err)
	}
	return nil
}

// FirstUnlocks returns each achievement key with the earliest time it was
// unlocked in any session.
func (r *AchievementRepository) FirstUnlocks() ([]Unlock, error) {
	rows, err := r.db.Query(`
		SELECT achievement_key, MIN(unlocked_at)
		FROM achievements
		GROUP BY achievement_key
		ORDER BY MIN(unlocked_at)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	var unlocks []Unlock
	for rows.Next() {
		var u Unlock
		var ts string
		if err := rows.Scan(&u.Key, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		u.UnlockedAt, _ = time.Parse(time.RFC3339, ts)
		unlocks = append(unlocks, u)
	}

	return unlocks, rows.Err()
}

// ListBySession returns the unlocks of one session.
func (r *AchievementRepository) ListBySession(sessionID string) ([]Unlock, error) {
	rows, err := r.db.Query(`
		SELECT session_id, achievement_key, unlocked_at
		FROM achievements
		WHERE session_id = ?
		ORDER BY unlocked_at
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session achievements: %w", err)
	}
	defer rows.Close()

	var unlocks []Unlock
	for rows.Next() {
		var u Unlock
		var ts string
		if err := rows.Scan(&u.SessionID, &u.Key, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		u.UnlockedAt, _ = time.Parse(time.RFC3339, ts)
		unlocks = append(unlocks, u)
	}

	return unlocks, rows.Err()
}
