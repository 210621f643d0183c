package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubetools/gocubing"
	"github.com/cubetools/gocubing/internal/app/analysis"
	"github.com/cubetools/gocubing/internal/app/storage"
	"github.com/cubetools/gocubing/solver"
)

var (
	solveSize     int
	solveScramble string
	solveStages   bool
	solveSave     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [state]",
	Short: "Solve a cube and print the solution",
	Long: `Compute a layered solution for a cube state.

The cube can be given as a flat state string ("-" reads it from stdin) or
built from a scramble with --size and --scramble. The solution is printed
as a single move sequence; --stages adds the per-stage breakdown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&solveSize, "size", 3, "Cube size when using --scramble")
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble moves to apply to a solved cube")
	solveCmd.Flags().BoolVar(&solveStages, "stages", false, "Print the per-stage breakdown")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Record the solve in the history database")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	var (
		cube *gocubing.Cube
		err  error
	)
	switch {
	case len(args) == 1:
		cube, err = cubeFromArg(args[0])
	case solveScramble != "":
		cube, err = cubeFromScramble(solveSize, solveScramble)
	default:
		return fmt.Errorf("need a state argument or --scramble")
	}
	if err != nil {
		return err
	}

	state := cube.String()
	start := time.Now()
	report, err := solver.SolveReport(cube)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Println(strings.Join(report.Moves, " "))
	fmt.Printf("%d moves in %s\n", len(report.Moves), elapsed.Round(time.Millisecond))

	if solveStages || verbose {
		printStages(report)
	}

	if solveSave {
		if err := saveSolve(report, state, solveScramble, elapsed); err != nil {
			return fmt.Errorf("failed to save solve: %w", err)
		}
	}
	return nil
}

func printStages(report *solver.Report) {
	fmt.Println()
	for i, st := range report.Stages {
		fmt.Printf("%2d. %-28s %3d moves", i+1, st.Name, len(st.Moves))
		if verbose && len(st.Moves) > 0 {
			fmt.Printf("  %s", strings.Join(st.Moves, " "))
		}
		fmt.Println()
	}
}

func saveSolve(report *solver.Report, state, scramble string, elapsed time.Duration) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solveRepo := storage.NewSolveRepository(db)
	solution := strings.Join(report.Moves, " ")
	solveID, err := solveRepo.Create(report.Size, scramble, state, solution, len(report.Moves), elapsed.Milliseconds())
	if err != nil {
		return err
	}

	var stages []storage.StageRecord
	for _, st := range report.Stages {
		stages = append(stages, storage.StageRecord{
			Name:  st.Name,
			Moves: strings.Join(st.Moves, " "),
			State: st.State,
		})
	}
	if err := storage.NewStageRepository(db).CreateBatch(solveID, stages); err != nil {
		return err
	}

	if verbose {
		summary := analysis.SummarizeSolution(report.Size, stages)
		fmt.Printf("saved %s (efficiency %.2f)\n", solveID, summary.Efficiency)
	} else {
		fmt.Printf("saved %s\n", solveID)
	}
	return nil
}
