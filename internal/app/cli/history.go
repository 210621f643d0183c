package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubetools/gocubing/internal/app/analysis"
	"github.com/cubetools/gocubing/internal/app/storage"
)

var (
	historyLimit int
	historyStats bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	Long:  `List recent solves from the history database, newest first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to list")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "Print aggregate statistics")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded.")
		return nil
	}

	for _, s := range solves {
		line := fmt.Sprintf("%s  %dx%d  %4d moves  %s",
			s.CreatedAt.Local().Format(time.DateTime), s.Size, s.Size, s.MoveCount, s.SolveID[:8])
		if s.DurationMs != nil {
			line += fmt.Sprintf("  %dms", *s.DurationMs)
		}
		fmt.Println(line)
	}

	if historyStats {
		summary := analysis.SummarizeHistory(solves)
		fmt.Println()
		fmt.Printf("Solves: %d  avg %.1f moves  best %d  worst %d\n",
			summary.Count, summary.AvgMoves, summary.BestMoves, summary.WorstMoves)
		for _, b := range summary.BySize {
			fmt.Printf("  %dx%d: %d solves, avg %.1f moves\n", b.Size, b.Size, b.Count, b.AvgMoves)
		}
	}
	return nil
}
