package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents a recorded solve in the database.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	Size       int
	Scramble   *string
	State      string
	Solution   string
	MoveCount  int
	DurationMs *int64
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a solve and returns its ID.
func (r *SolveRepository) Create(size int, scramble, state, solution string, moveCount int, durationMs int64) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}
	var durationPtr *int64
	if durationMs > 0 {
		durationPtr = &durationMs
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, size, scramble, state, solution, move_count, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), size, scramblePtr, state, solution, moveCount, durationPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, created_at, size, scramble, state, solution, move_count, duration_ms
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&s.SolveID, &createdAtStr, &s.Size,
		&s.Scramble, &s.State, &s.Solution,
		&s.MoveCount, &s.DurationMs,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)

	return &s, nil
}

// GetLast retrieves the most recent solve.
func (r *SolveRepository) GetLast() (*Solve, error) {
	var solveID string
	err := r.db.QueryRow(`
		SELECT solve_id FROM solves
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&solveID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}

	return r.Get(solveID)
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, size, scramble, state, solution, move_count, duration_ms
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string

		err := rows.Scan(
			&s.SolveID, &createdAtStr, &s.Size,
			&s.Scramble, &s.State, &s.Solution,
			&s.MoveCount, &s.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		solves = append(solves, s)
	}

	return solves, nil
}

// Delete deletes a solve and all related data (cascading).
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

// GetStageCount returns the number of recorded stages in a solve.
func (r *SolveRepository) GetStageCount(solveID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM stages WHERE solve_id = ?", solveID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get stage count: %w", err)
	}
	return count, nil
}
