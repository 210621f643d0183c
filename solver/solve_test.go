package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cubetools/gocubing"
)

func scrambled(t *testing.T, n int, seed int64) *gocubing.Cube {
	t.Helper()
	c := gocubing.NewCube(n)
	if n > 1 {
		_, err := c.Scramble(rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
	}
	return c
}

func TestSolveAllSizes(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 6, 7} {
		seeds := int64(4)
		if n >= 6 {
			seeds = 2
		}
		for seed := int64(1); seed <= seeds; seed++ {
			cube := scrambled(t, n, seed)

			_, err := Solve(cube, true)
			require.NoError(t, err, "size %d seed %d", n, seed)
			require.True(t, cube.IsSolved(), "size %d seed %d", n, seed)
		}
	}
}

func TestSolveRepairsReductionParity(t *testing.T) {
	// A single flipped pair and a single exchanged pair of built edges are
	// the two reduced states the 3x3 stages cannot absorb on an even cube.
	flipped := gocubing.NewCube(4)
	flipFrontEdge(flipped, nil)
	_, err := Solve(flipped, true)
	require.NoError(t, err)
	require.True(t, flipped.IsSolved())

	swapped := gocubing.NewCube(4)
	swapFrontEdges(swapped, nil)
	_, err = Solve(swapped, true)
	require.NoError(t, err)
	require.True(t, swapped.IsSolved())
}

func TestSolveWithoutMutation(t *testing.T) {
	cube := scrambled(t, 3, 42)
	before := cube.String()

	moves, err := Solve(cube, false)
	require.NoError(t, err)
	require.Equal(t, before, cube.String(), "cube was modified")

	replay, err := gocubing.FromString(before)
	require.NoError(t, err)
	for _, m := range moves {
		require.NoError(t, replay.Parse(m, nil))
	}
	require.True(t, replay.IsSolved())
}

func TestSolveSolvedCube(t *testing.T) {
	cube := gocubing.NewCube(3)
	_, err := Solve(cube, true)
	require.NoError(t, err)
	require.True(t, cube.IsSolved())
}

func TestSolveTrivialCube(t *testing.T) {
	cube := gocubing.NewCube(1)
	moves, err := Solve(cube, true)
	require.NoError(t, err)
	require.Empty(t, moves)
}

func TestSolveReportStages(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		cube := scrambled(t, n, 9)
		start := cube.String()

		rep, err := SolveReport(cube)
		require.NoError(t, err, "size %d", n)
		require.Equal(t, n, rep.Size)
		require.NotEmpty(t, rep.Stages, "size %d", n)
		require.Equal(t, start, cube.String(), "report modified the input")

		for _, st := range rep.Stages {
			require.NotEmpty(t, st.Name, "size %d", n)
			_, err := gocubing.FromString(st.State)
			require.NoError(t, err, "size %d stage %s", n, st.Name)
		}

		final, err := gocubing.FromString(rep.Stages[len(rep.Stages)-1].State)
		require.NoError(t, err)
		require.True(t, final.IsSolved(), "size %d", n)

		replay, err := gocubing.FromString(start)
		require.NoError(t, err)
		for _, m := range rep.Moves {
			require.NoError(t, replay.Parse(m, nil))
		}
		require.True(t, replay.IsSolved(), "size %d", n)
	}
}
