package solver

import (
	"fmt"

	"github.com/cubetools/gocubing"
)

// SolveCenters solves every center block of a big cube with 8-move
// commutators, tracking the target color layout on a 1x1 reference cube
// that rotates along with the main cube. On odd cubes the fixed middle
// stickers seed the reference, so centers end up where the middles already
// are.
func SolveCenters(c *gocubing.Cube) ([]string, error) {
	n := c.Size()
	ref := gocubing.NewCube(1)
	if n%2 == 1 {
		for _, f := range gocubing.Faces {
			ref.Grid(f)[0][0] = c.At(f, n/2, n/2)
		}
	}

	var moves []string
	solved := make(map[gocubing.Color]bool)

	// Each rotation here parks a different face in front; the inner loop
	// then cycles the remaining faces through the top.
	for _, rotation := range []string{"", "y", "y", "y", "x", "x2"} {
		apply(c, rotation, &moves)
		apply(ref, rotation, nil)
		target := ref.At(gocubing.Front, 0, 0)

		for selector := 0; selector < 5; selector++ {
			if selector < 4 {
				turn(c, gocubing.Back, 1, n-1, n-1, &moves)
				turn(ref, gocubing.Back, 1, 1, 1, nil)
			}
			chosen := gocubing.Top
			sliceDist := 1
			if selector == 4 {
				chosen = gocubing.Back
				sliceDist = 2
			}
			if solved[ref.At(chosen, 0, 0)] {
				continue
			}

			for i := 1; i < n-1; i++ {
				for j := 1; j < n-1; j++ {
					if c.At(chosen, i, j) != target {
						continue
					}

					x, y := j, i
					adjustFace := gocubing.Top
					if chosen == gocubing.Back {
						adjustFace = gocubing.Back
						y, x = n-1-y, n-1-x
					}
					adjustDist := -1

					// Spin the front until the destination cell is free.
					for k := 0; ; k++ {
						if k > 4 {
							return moves, fmt.Errorf("center commutator found no free cell: %w", gocubing.ErrImpossibleScramble)
						}
						if c.At(gocubing.Front, y, x) != target {
							break
						}
						turn(c, gocubing.Front, 1, 1, 1, &moves)
					}

					layer1, layer2 := x+1, y+1
					if layer1 == layer2 {
						layer2 = n + 1 - layer2
						adjustDist = -adjustDist
					}

					turn(c, gocubing.Left, -sliceDist, layer1, 1, &moves)
					turn(c, adjustFace, adjustDist, 1, 1, &moves)
					turn(c, gocubing.Left, -sliceDist, layer2, 1, &moves)
					turn(c, adjustFace, -adjustDist, 1, 1, &moves)
					turn(c, gocubing.Left, sliceDist, layer1, 1, &moves)
					turn(c, adjustFace, adjustDist, 1, 1, &moves)
					turn(c, gocubing.Left, sliceDist, layer2, 1, &moves)
					turn(c, adjustFace, -adjustDist, 1, 1, &moves)
				}
			}
		}
		solved[target] = true
	}

	return moves, nil
}
