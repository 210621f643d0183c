package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cubetools/gocubing"
)

// ParityKind distinguishes the two reduced-cube parity cases a 3x3 last
// layer can surface on big cubes.
type ParityKind int

const (
	// ParityOLL means an odd number of last-layer edges face the wrong way.
	ParityOLL ParityKind = iota
	// ParityPLL means exactly two last-layer edges remain swapped.
	ParityPLL
)

// ParityError reports a last-layer state that no 3x3 algorithm can reach.
// On a true 3x3 it means the cube was assembled wrong; on a reduced big
// cube the solver repairs the reduction and retries.
type ParityError struct {
	Kind ParityKind
}

func (e *ParityError) Error() string {
	if e.Kind == ParityPLL {
		return "solver: two last layer edges swapped"
	}
	return "solver: odd number of last layer edges flipped"
}

func (e *ParityError) Unwrap() error { return gocubing.ErrParity }

// Report captures a full solve broken into displayable stages.
type Report struct {
	Size   int
	Stages []StageResult
	Moves  []string
}

// Solve computes a move sequence that solves the cube, dispatching on its
// size. With mutate false the cube is left untouched. On error the returned
// moves are the ones already applied.
func Solve(c *gocubing.Cube, mutate bool) ([]string, error) {
	if !mutate {
		c = c.Clone()
	}
	return solveCollect(c, nil)
}

// SolveReport solves a copy of the cube and returns the per-stage
// breakdown along with the compressed move list.
func SolveReport(c *gocubing.Cube) (*Report, error) {
	work := c.Clone()
	rep := &Report{Size: c.Size()}
	moves, err := solveCollect(work, func(sr StageResult) {
		rep.Stages = append(rep.Stages, sr)
	})
	rep.Moves = moves
	return rep, err
}

func solveCollect(c *gocubing.Cube, emit func(StageResult)) ([]string, error) {
	switch n := c.Size(); {
	case n <= 1:
		return nil, nil
	case n == 2:
		return solve2x2(c, emit)
	case n == 3:
		return solve3x3(c, emit)
	default:
		return solveBig(c, emit)
	}
}

func record(emit func(StageResult), name, desc string, mv []string, state string) {
	if emit != nil {
		emit(StageResult{Name: name, Description: desc, Moves: mv, State: state})
	}
}

// solve2x2 pads the cube to a 3x3, runs the corner stages, and converts the
// moves back to 2x2 notation.
func solve2x2(c *gocubing.Cube, emit func(StageResult)) ([]string, error) {
	c3, err := c.Get3x3()
	if err != nil {
		return nil, err
	}
	var moves []string
	for _, st := range NewPipeline2x2().Stages() {
		mv, serr := st.Run(c3)
		conv, cerr := gocubing.Convert3x3MovesTo2x2(mv)
		if cerr != nil {
			return moves, cerr
		}
		if perr := c.Parse(strings.Join(conv, " "), nil); perr != nil {
			return moves, perr
		}
		moves = append(moves, conv...)
		record(emit, st.Name, st.Description, conv, c.String())
		if serr != nil {
			return moves, serr
		}
	}
	extra, err := OrientTopUntilSolve(c)
	moves = append(moves, extra...)
	if err != nil {
		return moves, err
	}
	if len(extra) > 0 {
		record(emit, "align top", "spin the top layer into place", extra, c.String())
	}
	return gocubing.Compress(moves), nil
}

func solve3x3(c *gocubing.Cube, emit func(StageResult)) ([]string, error) {
	c3, err := c.Get3x3()
	if err != nil {
		return nil, err
	}
	var moves []string
	for _, st := range NewPipeline3x3().Stages() {
		mv, serr := st.Run(c3)
		if perr := c.Parse(strings.Join(mv, " "), nil); perr != nil {
			return moves, perr
		}
		moves = append(moves, mv...)
		record(emit, st.Name, st.Description, mv, c.String())
		if serr != nil {
			return moves, serr
		}
	}
	return gocubing.Compress(moves), nil
}

// solveBig reduces a big cube to a 3x3 by solving centers and pairing
// edges, then runs the 3x3 stages with the moves widened back to the big
// cube. Reduction parity surfaced by the last layer is repaired on the big
// cube and the whole flow retried.
func solveBig(c *gocubing.Cube, emit func(StageResult)) ([]string, error) {
	n := c.Size()
	var moves []string
	for attempt := 0; attempt < 4; attempt++ {
		mv, err := SolveCenters(c)
		moves = append(moves, mv...)
		if err != nil {
			return moves, err
		}
		record(emit, "solve centers", "build a uniform center block on every face", mv, c.String())

		mv, err = SolveEdges(c)
		moves = append(moves, mv...)
		if err != nil {
			return moves, err
		}
		record(emit, "pair edges", "collect matching wings into complete edges", mv, c.String())

		c3, err := c.Get3x3()
		if err != nil {
			return moves, fmt.Errorf("reduction incomplete: %w", err)
		}
		var stageErr error
		for _, st := range NewPipeline3x3().Stages() {
			mv3, serr := st.Run(c3)
			conv, cerr := gocubing.Convert3x3MovesToNxN(mv3, n)
			if cerr != nil {
				return moves, cerr
			}
			if perr := c.Parse(strings.Join(conv, " "), nil); perr != nil {
				return moves, perr
			}
			moves = append(moves, conv...)
			record(emit, st.Name, st.Description, conv, c.String())
			if serr != nil {
				stageErr = serr
				break
			}
		}
		if stageErr == nil {
			return gocubing.Compress(moves), nil
		}
		var pe *ParityError
		if !errors.As(stageErr, &pe) {
			return moves, stageErr
		}
		if n%2 == 1 {
			// Odd cubes reduce to a genuine 3x3, so a parity case means
			// the sticker arrangement was never reachable by turns.
			return moves, fmt.Errorf("parity on an odd cube: %w", gocubing.ErrImpossibleScramble)
		}
		var fix []string
		if pe.Kind == ParityOLL {
			// Reversing one paired edge in place toggles edge orientation
			// parity and keeps the reduction intact.
			flipFrontEdge(c, &fix)
			record(emit, "orientation parity fix", "flip one paired edge as a unit", fix, c.String())
		} else {
			// Exchanging two paired edges toggles edge permutation parity
			// and keeps the reduction intact.
			swapFrontEdges(c, &fix)
			record(emit, "permutation parity fix", "swap two paired edges as units", fix, c.String())
		}
		moves = append(moves, fix...)
	}
	return moves, fmt.Errorf("parity unresolved after retries: %w", gocubing.ErrImpossibleScramble)
}
