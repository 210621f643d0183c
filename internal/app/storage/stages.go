package storage

import (
	"database/sql"
	"fmt"
)

// StageRecord represents one pipeline stage of a recorded solve.
type StageRecord struct {
	StageID    int64
	SolveID    string
	StageIndex int
	Name       string
	Moves      string
	State      string
}

// StageRepository provides CRUD operations for solve stages.
type StageRepository struct {
	db *DB
}

// NewStageRepository creates a new stage repository.
func NewStageRepository(db *DB) *StageRepository {
	return &StageRepository{db: db}
}

// CreateBatch records all stages of a solve in a single transaction.
func (r *StageRepository) CreateBatch(solveID string, stages []StageRecord) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, st := range stages {
			_, err := tx.Exec(`
				INSERT INTO stages (solve_id, stage_index, name, moves, state)
				VALUES (?, ?, ?, ?, ?)
			`, solveID, i, st.Name, st.Moves, st.State)
			if err != nil {
				return fmt.Errorf("failed to create stage %d: %w", i, err)
			}
		}
		return nil
	})
}

// GetBySolve retrieves all stages of a solve in order.
func (r *StageRepository) GetBySolve(solveID string) ([]StageRecord, error) {
	rows, err := r.db.Query(`
		SELECT stage_id, solve_id, stage_index, name, moves, state
		FROM stages
		WHERE solve_id = ?
		ORDER BY stage_index
	`, solveID)

	if err != nil {
		return nil, fmt.Errorf("failed to get stages: %w", err)
	}
	defer rows.Close()

	var stages []StageRecord
	for rows.Next() {
		var st StageRecord
		if err := rows.Scan(&st.StageID, &st.SolveID, &st.StageIndex, &st.Name, &st.Moves, &st.State); err != nil {
			return nil, fmt.Errorf("failed to scan stage: %w", err)
		}
		stages = append(stages, st)
	}

	return stages, nil
}
