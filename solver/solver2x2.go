package solver

import (
	"github.com/cubetools/gocubing"
)

// Cube2x2From3x3 projects the corners of a 3x3 back onto a 2x2. Used after
// running the corner-only pipeline on a 2x2's padded 3x3 form.
func Cube2x2From3x3(c *gocubing.Cube3x3) *gocubing.Cube {
	out := gocubing.NewCube(2)
	for _, f := range gocubing.Faces {
		grid := out.Grid(f)
		grid[0][0] = c.At(f, 0, 0)
		grid[0][1] = c.At(f, 0, 2)
		grid[1][0] = c.At(f, 2, 0)
		grid[1][1] = c.At(f, 2, 2)
	}
	return out
}

// OrientTopUntilSolve spins the top layer until the front face is uniform,
// which on a corner-solved cube finishes the solve.
func OrientTopUntilSolve(c *gocubing.Cube) ([]string, error) {
	var moves []string
	for i := 0; !c.FaceUniform(gocubing.Front); i++ {
		if i > 4 {
			return gocubing.Compress(moves), errStuck("top alignment")
		}
		turn(c, gocubing.Top, 1, 1, 1, &moves)
	}
	return gocubing.Compress(moves), nil
}

// NewPipeline2x2 returns the corner-only pipeline, run against a 2x2's
// padded 3x3 form.
func NewPipeline2x2() *Pipeline {
	return NewPipeline(
		Stage{"orient centers", "Bring the white reference center to the bottom.", OrientCenters},
		Stage{"first layer corners", "Solve the white corners.", SolveFirstLayerCorners},
		Stage{"orient last layer corners", "Make the top face yellow.", SolveOLLCorners},
		Stage{"permute last layer corners", "Place the top corners.", SolvePLLCorners},
	)
}
