package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cubetools/gocubing/internal/app/storage"
)

func TestSummarizeSolution(t *testing.T) {
	stages := []storage.StageRecord{
		{Name: "white cross", Moves: "F2 D D'"},
		{Name: "first layer corners", Moves: "R U R'"},
	}

	s := SummarizeSolution(3, stages)
	require.Equal(t, 3, s.Size)
	require.Equal(t, 6, s.TotalMoves)
	// D D' cancels under compression.
	require.Equal(t, 4, s.OptimizedMoves)
	require.InDelta(t, 4.0/6.0, s.Efficiency, 1e-9)

	require.Len(t, s.StageStats, 2)
	require.Equal(t, "white cross", s.StageStats[0].Name)
	require.Equal(t, 3, s.StageStats[0].MoveCount)
	require.InDelta(t, 0.5, s.StageStats[0].Share, 1e-9)
	require.InDelta(t, 0.5, s.StageStats[1].Share, 1e-9)
}

func TestSummarizeSolutionEmpty(t *testing.T) {
	s := SummarizeSolution(3, nil)
	require.Zero(t, s.TotalMoves)
	require.Zero(t, s.Efficiency)
	require.Empty(t, s.StageStats)
}

func TestSummarizeHistory(t *testing.T) {
	solves := []storage.Solve{
		{Size: 3, MoveCount: 60},
		{Size: 3, MoveCount: 40},
		{Size: 4, MoveCount: 200},
	}

	h := SummarizeHistory(solves)
	require.Equal(t, 3, h.Count)
	require.Equal(t, 40, h.BestMoves)
	require.Equal(t, 200, h.WorstMoves)
	require.InDelta(t, 100.0, h.AvgMoves, 1e-9)

	require.Len(t, h.BySize, 2)
	require.Equal(t, 3, h.BySize[0].Size)
	require.Equal(t, 2, h.BySize[0].Count)
	require.InDelta(t, 50.0, h.BySize[0].AvgMoves, 1e-9)
	require.Equal(t, 4, h.BySize[1].Size)
	require.InDelta(t, 200.0, h.BySize[1].AvgMoves, 1e-9)
}

func TestSummarizeHistoryEmpty(t *testing.T) {
	h := SummarizeHistory(nil)
	require.Zero(t, h.Count)
	require.Zero(t, h.AvgMoves)
	require.Empty(t, h.BySize)
}

func TestMoveFrequency(t *testing.T) {
	freq := MoveFrequency([]string{"R", "R'", "R2", "3Rw'", "U", "x"})
	require.Equal(t, 3, freq["R"])
	require.Equal(t, 1, freq["3Rw"])
	require.Equal(t, 1, freq["U"])
	require.Equal(t, 1, freq["x"])
}
