// Package analysis computes statistics over generated solutions and the
// solve history.
package analysis

import (
	"sort"
	"strings"

	"github.com/cubetools/gocubing"
	"github.com/cubetools/gocubing/internal/app/storage"
)

// SolutionSummary contains statistics for a single solution.
type SolutionSummary struct {
	Size           int          `json:"size"`
	TotalMoves     int          `json:"total_moves"`
	OptimizedMoves int          `json:"optimized_moves"`
	Efficiency     float64      `json:"efficiency"`
	StageStats     []StageStats `json:"stage_stats,omitempty"`
}

// StageStats contains statistics for a single pipeline stage.
type StageStats struct {
	Name      string  `json:"name"`
	MoveCount int     `json:"move_count"`
	Share     float64 `json:"share"`
}

// SummarizeSolution computes per-stage statistics for a staged solution.
func SummarizeSolution(size int, stages []storage.StageRecord) SolutionSummary {
	summary := SolutionSummary{Size: size}

	var all []string
	for _, st := range stages {
		mv := strings.Fields(st.Moves)
		all = append(all, mv...)
		summary.StageStats = append(summary.StageStats, StageStats{
			Name:      st.Name,
			MoveCount: len(mv),
		})
	}

	summary.TotalMoves = len(all)
	summary.OptimizedMoves = len(gocubing.Compress(all))
	if summary.TotalMoves > 0 {
		summary.Efficiency = float64(summary.OptimizedMoves) / float64(summary.TotalMoves)
		for i := range summary.StageStats {
			summary.StageStats[i].Share = float64(summary.StageStats[i].MoveCount) / float64(summary.TotalMoves)
		}
	}

	return summary
}

// HistorySummary contains aggregate statistics over recorded solves.
type HistorySummary struct {
	Count      int             `json:"count"`
	AvgMoves   float64         `json:"avg_moves"`
	BestMoves  int             `json:"best_moves"`
	WorstMoves int             `json:"worst_moves"`
	BySize     []SizeBreakdown `json:"by_size,omitempty"`
}

// SizeBreakdown aggregates solves of one cube size.
type SizeBreakdown struct {
	Size     int     `json:"size"`
	Count    int     `json:"count"`
	AvgMoves float64 `json:"avg_moves"`
}

// SummarizeHistory aggregates move counts over recorded solves.
func SummarizeHistory(solves []storage.Solve) HistorySummary {
	summary := HistorySummary{Count: len(solves)}
	if len(solves) == 0 {
		return summary
	}

	total := 0
	summary.BestMoves = solves[0].MoveCount
	bySize := make(map[int]*SizeBreakdown)
	for _, s := range solves {
		total += s.MoveCount
		if s.MoveCount < summary.BestMoves {
			summary.BestMoves = s.MoveCount
		}
		if s.MoveCount > summary.WorstMoves {
			summary.WorstMoves = s.MoveCount
		}
		b := bySize[s.Size]
		if b == nil {
			b = &SizeBreakdown{Size: s.Size}
			bySize[s.Size] = b
		}
		b.Count++
		b.AvgMoves += float64(s.MoveCount)
	}
	summary.AvgMoves = float64(total) / float64(len(solves))

	for _, b := range bySize {
		b.AvgMoves /= float64(b.Count)
		summary.BySize = append(summary.BySize, *b)
	}
	sort.Slice(summary.BySize, func(i, j int) bool {
		return summary.BySize[i].Size < summary.BySize[j].Size
	})

	return summary
}

// MoveFrequency counts how often each move root appears in a solution.
func MoveFrequency(moves []string) map[string]int {
	freq := make(map[string]int)
	for _, m := range moves {
		freq[gocubing.RootOf(m)]++
	}
	return freq
}
