package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/neoncube"
)

// MoveRecord is one journaled user move of a solve.
type MoveRecord struct {
	SolveID   string
	MoveIndex int
	TsMs      int64
	Notation  string
}

// MoveRepository provides access to the moves table.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

func createMoves(tx *sql.Tx, solveID string, moves []neoncube.Move) error {
	for i, m := range moves {
		var tsMs int64
		if !m.Time.IsZero() {
			tsMs = m.Time.UnixMilli()
		}
		_, err := tx.Exec(`
			INSERT INTO moves (solve_id, move_index, ts_ms, notation)
			VALUES (?, ?, ?, ?)
		`, solveID, i, tsMs, m.Notation())
		if err != nil {
			return fmt.Errorf("failed to create move %d: %w", i, err)
		}
	}
	return nil
}

// GetBySolve retrieves all moves for a solve in order.
func (r *MoveRepository) GetBySolve(solveID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, move_index, ts_ms, notation
		FROM moves
		WHERE solve_id = ?
		ORDER BY move_index
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.SolveID, &m.MoveIndex, &m.TsMs, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves for a solve.
func (r *MoveRepository) Count(solveID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE solve_id = ?", solveID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves converts journaled records back into moves.
func ToMoves(records []MoveRecord) ([]neoncube.Move, error) {
	moves := make([]neoncube.Move, len(records))
	for i, r := range records {
		m, err := neoncube.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", r.MoveIndex, err)
		}
		if r.TsMs != 0 {
			m.Time = time.UnixMilli(r.TsMs)
		}
		moves[i] = m
	}
	return moves, nil
}
