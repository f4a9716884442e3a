package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/neoncube/internal/game"
)

// Solve is one journaled solve.
type Solve struct {
	SolveID      string
	SessionID    string
	Size         int
	Mode         string
	Theme        string
	Moves        int
	Points       float64
	Prestige     int
	ScrambleText *string
	DurationMs   int64
	SolvedAt     time.Time
}

// SizeStats summarises the journal for one cube size.
type SizeStats struct {
	Size       int
	Count      int
	BestMoves  int
	AvgMoves   float64
	BestTimeMs int64
}

// SolveRepository provides access to the solves table.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores a solve, registering its session on first sight, and
// returns the new solve ID.
func (r *SolveRepository) Create(rec game.SolveRecord) (string, error) {
	id := uuid.New().String()
	solvedAt := rec.SolvedAt.UTC().Format(time.RFC3339)

	var scramblePtr *string
	if rec.Scramble != "" {
		scramblePtr = &rec.Scramble
	}

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO sessions (session_id, started_at, last_solve_at, solve_count, best_prestige)
			VALUES (?, ?, ?, 1, ?)
			ON CONFLICT(session_id) DO UPDATE SET
				last_solve_at = excluded.last_solve_at,
				solve_count = solve_count + 1,
				best_prestige = MAX(best_prestige, excluded.best_prestige)
		`, rec.SessionID, solvedAt, solvedAt, rec.Prestige)
		if err != nil {
			return fmt.Errorf("failed to update session: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO solves (solve_id, session_id, size, mode, theme, moves, points, prestige, scramble_text, duration_ms, solved_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, rec.SessionID, rec.Size, string(rec.Mode), rec.Theme, rec.Moves, rec.Points,
			rec.Prestige, scramblePtr, rec.Duration.Milliseconds(), solvedAt)
		if err != nil {
			return fmt.Errorf("failed to create solve: %w", err)
		}
		return createMoves(tx, id, rec.Solution)
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

const solveColumns = `solve_id, session_id, size, mode, theme, moves, points, prestige, scramble_text, duration_ms, solved_at`

func scanSolve(row interface{ Scan(...any) error }) (*Solve, error) {
	var s Solve
	var solvedAtStr string
	err := row.Scan(
		&s.SolveID, &s.SessionID, &s.Size, &s.Mode, &s.Theme,
		&s.Moves, &s.Points, &s.Prestige, &s.ScrambleText,
		&s.DurationMs, &solvedAtStr,
	)
	if err != nil {
		return nil, err
	}
	s.SolvedAt, _ = time.Parse(time.RFC3339, solvedAtStr)
	return &s, nil
}

// Get retrieves a solve by ID. A missing solve is (nil, nil).
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`SELECT `+solveColumns+` FROM solves WHERE solve_id = ?`, solveID)
	s, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// List returns the most recent solves, newest first. A non-positive limit
// returns everything.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	query := `SELECT ` + solveColumns + ` FROM solves ORDER BY solved_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}

	return solves, rows.Err()
}

// ListBySession returns a session's solves in the order they happened.
func (r *SolveRepository) ListBySession(sessionID string) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT `+solveColumns+` FROM solves
		WHERE session_id = ?
		ORDER BY solved_at ASC, rowid ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}

	return solves, rows.Err()
}

// StatsBySize aggregates every solve per cube size.
func (r *SolveRepository) StatsBySize() ([]SizeStats, error) {
	rows, err := r.db.Query(`
		SELECT size, COUNT(*), MIN(moves), AVG(moves), MIN(duration_ms)
		FROM solves
		GROUP BY size
		ORDER BY size
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	var stats []SizeStats
	for rows.Next() {
		var st SizeStats
		if err := rows.Scan(&st.Size, &st.Count, &st.BestMoves, &st.AvgMoves, &st.BestTimeMs); err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		stats = append(stats, st)
	}

	return stats, rows.Err()
}

// Delete removes a solve.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}
