package solver

import (
	"fmt"

	"github.com/cubetools/gocubing"
)

// The beginner-method stages below build on each other in order. Each one
// assumes exactly the state its predecessors guarantee and keeps the cube's
// centers fixed with white on the bottom once OrientCenters has run.

// sideFaces lists the side faces in their clockwise cycle order.
var sideFaces = [4]gocubing.Face{
	gocubing.Front, gocubing.Left, gocubing.Back, gocubing.Right,
}

// sideFacePairs pairs each side face with its clockwise neighbor.
var sideFacePairs = [4][2]gocubing.Face{
	{gocubing.Front, gocubing.Left},
	{gocubing.Left, gocubing.Back},
	{gocubing.Back, gocubing.Right},
	{gocubing.Right, gocubing.Front},
}

// maxStageLoops bounds every search loop in the stages. A well-formed cube
// finishes far below it; hitting the bound means the sticker state is not a
// reachable cube.
const maxStageLoops = 100

func errStuck(what string) error {
	return fmt.Errorf("%s made no progress: %w", what, gocubing.ErrImpossibleScramble)
}

func centerColor(c *gocubing.Cube3x3, f gocubing.Face) gocubing.Color {
	return c.At(f, 1, 1)
}

func hasColor(p gocubing.Piece, color gocubing.Color) bool {
	_, ok := p.ColorToFace[color]
	return ok
}

// OrientCenters rotates the middle slices until white sits on the bottom
// face, first around the R axis and then around the F axis.
func OrientCenters(c *gocubing.Cube3x3) ([]string, error) {
	var moves []string
	for i := 0; i < 8; i++ {
		face := gocubing.Right
		if i >= 4 {
			face = gocubing.Front
		}
		if centerColor(c, gocubing.Bottom) == gocubing.White {
			break
		}
		turn(&c.Cube, face, 1, 2, 1, &moves)
	}
	return moves, nil
}

func allEdgesColored(c *gocubing.Cube3x3, f gocubing.Face, color gocubing.Color) bool {
	return c.At(f, 0, 1) == color && c.At(f, 1, 0) == color &&
		c.At(f, 1, 2) == color && c.At(f, 2, 1) == color
}

// SolveWhiteCross builds the white cross, assuming oriented centers. White
// edges are first collected on the top face oriented correctly, then each
// is dropped into place with a 180 turn above its matching center.
func SolveWhiteCross(c *gocubing.Cube3x3) ([]string, error) {
	var moves []string

	for i := 0; !allEdgesColored(c, gocubing.Top, gocubing.White); i++ {
		if i > maxStageLoops {
			return moves, errStuck("white cross collection")
		}

		// Rotate the top until the front-top slot holds a non-white edge.
		for j := 0; j < 4 && edgeBetween(c, gocubing.Front, gocubing.Top).FaceToColor[gocubing.Top] == gocubing.White; j++ {
			turn(&c.Cube, gocubing.Top, 1, 1, 1, &moves)
		}
		topFront := edgeBetween(c, gocubing.Front, gocubing.Top)

		if topFront.FaceToColor[gocubing.Front] == gocubing.White {
			// Edge is here but facing out. Flip it.
			apply(&c.Cube, "F U' R", &moves)
			continue
		}

		if loc, ok := findSecondLayerWhiteEdge(c); ok {
			turn(&c.Cube, gocubing.Top, -loc, 2, 1, &moves)
			if edgeBetween(c, gocubing.Front, gocubing.Left).FaceToColor[gocubing.Front] == gocubing.White {
				apply(&c.Cube, "2U' F'", &moves)
			} else {
				turn(&c.Cube, gocubing.Front, 1, 1, 1, &moves)
			}
			continue
		}

		if loc, ok := findBottomWhiteEdge(c); ok {
			turn(&c.Cube, gocubing.Bottom, loc, 1, 1, &moves)
			if edgeBetween(c, gocubing.Front, gocubing.Bottom).FaceToColor[gocubing.Bottom] == gocubing.White {
				turn(&c.Cube, gocubing.Front, 2, 1, 1, &moves)
			} else {
				apply(&c.Cube, "F' U' R", &moves)
			}
		}
	}

	for i := 0; !allEdgesColored(c, gocubing.Bottom, gocubing.White); i++ {
		if i > maxStageLoops {
			return moves, errStuck("white cross insertion")
		}

		for j := 0; ; j++ {
			if j > 4 {
				return moves, errStuck("white cross insertion")
			}
			if edgeBetween(c, gocubing.Front, gocubing.Top).FaceToColor[gocubing.Top] == gocubing.White {
				break
			}
			turn(&c.Cube, gocubing.Top, 1, 1, 1, &moves)
		}

		// Spin the bottom two layers until the matching center arrives.
		frontColor := edgeBetween(c, gocubing.Front, gocubing.Top).FaceToColor[gocubing.Front]
		for j := 0; j < 4 && centerColor(c, gocubing.Front) != frontColor; j++ {
			turn(&c.Cube, gocubing.Bottom, 1, 2, 2, &moves)
		}
		turn(&c.Cube, gocubing.Front, 2, 1, 1, &moves)
	}

	return moves, nil
}

func findSecondLayerWhiteEdge(c *gocubing.Cube3x3) (int, bool) {
	for k, pair := range sideFacePairs {
		if hasColor(edgeBetween(c, pair[0], pair[1]), gocubing.White) {
			return k, true
		}
	}
	return 0, false
}

func findBottomWhiteEdge(c *gocubing.Cube3x3) (int, bool) {
	for k, f := range sideFaces {
		if hasColor(edgeBetween(c, gocubing.Bottom, f), gocubing.White) {
			return k, true
		}
	}
	return 0, false
}

// cornerState reports whether the bottom corner between two side faces
// holds the right piece, and whether that piece is also oriented with white
// down.
func cornerState(c *gocubing.Cube3x3, a, b gocubing.Face) (permuted, oriented bool) {
	corner := cornerBetween(c, a, b, gocubing.Bottom)
	aColor := centerColor(c, a)
	bColor := centerColor(c, b)
	permuted = hasColor(corner, aColor) && hasColor(corner, bColor) && hasColor(corner, gocubing.White)
	oriented = corner.FaceToColor[gocubing.Bottom] == gocubing.White &&
		corner.FaceToColor[a] == aColor &&
		corner.FaceToColor[b] == bColor
	return permuted, oriented
}

func cornerMatches(c *gocubing.Cube3x3, a, b, d gocubing.Face, colors []gocubing.Color) bool {
	corner := cornerBetween(c, a, b, d)
	for _, color := range colors {
		if !hasColor(corner, color) {
			return false
		}
	}
	return true
}

func allWhiteCornersSolved(c *gocubing.Cube3x3) bool {
	for _, pair := range sideFacePairs {
		permuted, oriented := cornerState(c, pair[0], pair[1])
		if !permuted || !oriented {
			return false
		}
	}
	return true
}

// SolveFirstLayerCorners finishes the white layer, assuming the cross is
// built. Each unsolved corner is brought to the front-right-bottom slot and
// inserted with repeated sexy moves.
func SolveFirstLayerCorners(c *gocubing.Cube3x3) ([]string, error) {
	var moves []string
	for i := 0; !allWhiteCornersSolved(c); i++ {
		if i > maxStageLoops {
			return moves, errStuck("first layer corners")
		}

		for j := 0; j < 4; j++ {
			permuted, oriented := cornerState(c, gocubing.Front, gocubing.Right)
			if !permuted || !oriented {
				break
			}
			turn(&c.Cube, gocubing.Bottom, 1, 2, 2, &moves)
		}

		rightColor := centerColor(c, gocubing.Right)
		frontColor := centerColor(c, gocubing.Front)
		want := []gocubing.Color{rightColor, frontColor, gocubing.White}

		if permuted, _ := cornerState(c, gocubing.Front, gocubing.Right); permuted {
			var reps int
			switch cornerBetween(c, gocubing.Front, gocubing.Right, gocubing.Bottom).ColorToFace[gocubing.White] {
			case gocubing.Right:
				reps = 2
			case gocubing.Front:
				reps = 4
			default:
				return moves, fmt.Errorf("first layer corner misoriented: %w", gocubing.ErrImpossibleScramble)
			}
			apply(&c.Cube, gocubing.SexyMoveTimes(reps, false), &moves)
			continue
		}

		for k, pair := range sideFacePairs {
			if cornerMatches(c, gocubing.Bottom, pair[0], pair[1], want) {
				loc := k + 1
				turn(&c.Cube, gocubing.Bottom, loc, 1, 1, &moves)
				apply(&c.Cube, gocubing.SexyMoveTimes(1, false), &moves)
				turn(&c.Cube, gocubing.Bottom, -loc, 1, 1, &moves)
				break
			}
		}

		for k, pair := range sideFacePairs {
			if cornerMatches(c, gocubing.Top, pair[0], pair[1], want) {
				loc := k + 1
				turn(&c.Cube, gocubing.Top, -loc, 1, 1, &moves)
				var reps int
				switch cornerBetween(c, gocubing.Front, gocubing.Right, gocubing.Top).ColorToFace[gocubing.White] {
				case gocubing.Top:
					reps = 3
				case gocubing.Front:
					reps = 5
				case gocubing.Right:
					reps = 1
				default:
					return moves, fmt.Errorf("top layer corner misoriented: %w", gocubing.ErrImpossibleScramble)
				}
				apply(&c.Cube, gocubing.SexyMoveTimes(reps, false), &moves)
				break
			}
		}
	}
	return moves, nil
}

func edgeSolved(c *gocubing.Cube3x3, a, b gocubing.Face) bool {
	edge := edgeBetween(c, a, b)
	return edge.FaceToColor[a] == centerColor(c, a) && edge.FaceToColor[b] == centerColor(c, b)
}

func edgeMatchesFrontRight(c *gocubing.Cube3x3, a, b gocubing.Face) bool {
	edge := edgeBetween(c, a, b)
	return hasColor(edge, centerColor(c, gocubing.Right)) && hasColor(edge, centerColor(c, gocubing.Front))
}

func f2lSolved(c *gocubing.Cube3x3) bool {
	for _, pair := range sideFacePairs {
		if !edgeSolved(c, pair[0], pair[1]) {
			return false
		}
	}
	return true
}

// SolveSecondLayerEdges completes the first two layers, assuming the white
// layer is done.
func SolveSecondLayerEdges(c *gocubing.Cube3x3) ([]string, error) {
	var moves []string
	edgeInsert := gocubing.SexyMoveTimes(1, false) + " y " + gocubing.SexyMoveTimes(1, true) + "y' "

	for i := 0; !f2lSolved(c); i++ {
		if i > maxStageLoops {
			return moves, errStuck("second layer edges")
		}

		for j := 0; j < 4 && edgeSolved(c, gocubing.Front, gocubing.Right); j++ {
			turn(&c.Cube, gocubing.Bottom, 1, 2, 2, &moves)
		}

		if edgeMatchesFrontRight(c, gocubing.Front, gocubing.Right) {
			// In place but flipped: cycle it out and back in.
			apply(&c.Cube, edgeInsert+"U2 "+edgeInsert, &moves)
		}

		for k, pair := range sideFacePairs {
			if edgeMatchesFrontRight(c, pair[0], pair[1]) {
				loc := k + 1
				turn(&c.Cube, gocubing.Bottom, loc, 2, 2, &moves)
				apply(&c.Cube, edgeInsert, &moves)
				turn(&c.Cube, gocubing.Bottom, -loc, 2, 2, &moves)
				break
			}
		}

		for k, f := range sideFaces {
			if edgeMatchesFrontRight(c, f, gocubing.Top) {
				turn(&c.Cube, gocubing.Top, -k, 1, 1, &moves)
				if edgeBetween(c, gocubing.Top, gocubing.Front).FaceToColor[gocubing.Top] == centerColor(c, gocubing.Front) {
					leftInsert := "y " + gocubing.SexyMoveTimes(1, true) + "y' " + gocubing.SexyMoveTimes(1, false)
					apply(&c.Cube, "U2 "+leftInsert, &moves)
				} else {
					apply(&c.Cube, "U "+edgeInsert, &moves)
				}
				break
			}
		}
	}
	return moves, nil
}

// SolveOLLEdges orients the last layer edges. One or three oriented edges
// cannot happen on a real 3x3; on a reduced big cube it signals orientation
// parity, reported as a ParityError.
func SolveOLLEdges(c *gocubing.Cube3x3) ([]string, error) {
	var moves []string

	topYellow := func(f gocubing.Face) bool {
		return edgeBetween(c, f, gocubing.Top).FaceToColor[gocubing.Top] == gocubing.Yellow
	}
	count := 0
	for _, f := range sideFaces {
		if topYellow(f) {
			count++
		}
	}

	switch count {
	case 1, 3:
		return nil, &ParityError{Kind: ParityOLL}
	case 4:
		return nil, nil
	case 2:
		// Distinguish line from L shape by the face-value sum of the
		// oriented edges, then set up and run the edge-orienting trigger.
		s := 0
		for _, f := range sideFaces {
			if topYellow(f) {
				s += int(f)
			}
		}
		layers := 1
		if s%2 != 0 {
			layers = 2
		}
		switch s {
		case 1:
			turn(&c.Cube, gocubing.Top, -1, 1, 1, &moves)
		case 2, 5:
			turn(&c.Cube, gocubing.Top, 1, 1, 1, &moves)
		case 3:
			if edgeBetween(c, gocubing.Top, gocubing.Front).FaceToColor[gocubing.Top] != gocubing.Yellow {
				turn(&c.Cube, gocubing.Top, 2, 1, 1, &moves)
			}
		}
		turn(&c.Cube, gocubing.Front, 1, layers, layers, &moves)
		apply(&c.Cube, gocubing.SexyMoveTimes(1, false), &moves)
		turn(&c.Cube, gocubing.Front, -1, layers, layers, &moves)
	case 0:
		turn(&c.Cube, gocubing.Front, 1, 1, 1, &moves)
		apply(&c.Cube, gocubing.SexyMoveTimes(1, false), &moves)
		turn(&c.Cube, gocubing.Front, 1, 2, 1, &moves)
		apply(&c.Cube, gocubing.SexyMoveTimes(1, false), &moves)
		turn(&c.Cube, gocubing.Front, -1, 2, 2, &moves)
	}

	return moves, nil
}

// SolveOLLCorners orients the last layer corners by flipping the cube and
// twisting each corner with sexy-move repetitions.
func SolveOLLCorners(c *gocubing.Cube3x3) ([]string, error) {
	var moves []string
	apply(&c.Cube, "x2", &moves)

	ollSolved := func() bool {
		var first gocubing.Color
		for k, pair := range sideFacePairs {
			color := cornerBetween(c, pair[0], pair[1], gocubing.Bottom).FaceToColor[gocubing.Bottom]
			if k == 0 {
				first = color
			} else if color != first {
				return false
			}
		}
		return true
	}

	for i := 0; !ollSolved(); i++ {
		if i > maxStageLoops {
			return moves, errStuck("last layer corner orientation")
		}
		var reps int
		switch cornerBetween(c, gocubing.Right, gocubing.Front, gocubing.Bottom).ColorToFace[gocubing.Yellow] {
		case gocubing.Bottom:
			reps = 0
		case gocubing.Front:
			reps = 4
		case gocubing.Right:
			reps = 2
		default:
			return moves, fmt.Errorf("last layer corner misoriented: %w", gocubing.ErrImpossibleScramble)
		}
		apply(&c.Cube, gocubing.SexyMoveTimes(reps, false), &moves)
		turn(&c.Cube, gocubing.Bottom, 1, 1, 1, &moves)
	}

	apply(&c.Cube, "x2", &moves)
	return moves, nil
}

const tPerm = " R U R' U' R' F R2 U' R' U' R U R' F' "

func topRowDiff(c *gocubing.Cube3x3, f gocubing.Face) int {
	d := int(c.At(f, 0, 2)) - int(c.At(f, 0, 0))
	if d < 0 {
		return -d
	}
	return d
}

// SolvePLLCorners permutes the last layer corners with T perms.
func SolvePLLCorners(c *gocubing.Cube3x3) ([]string, error) {
	var moves []string

	d1 := topRowDiff(c, gocubing.Front)
	d2 := topRowDiff(c, gocubing.Back)

	if d1 == 0 && d2 == 0 {
		return nil, nil
	}
	if d1 == 2 && d2 == 2 {
		apply(&c.Cube, tPerm+"y2"+tPerm, &moves)
		return moves, nil
	}

	if d1%4 == 2 {
		turn(&c.Cube, gocubing.Top, -1, 1, 1, &moves)
	} else if d2%4 == 2 {
		turn(&c.Cube, gocubing.Top, 1, 1, 1, &moves)
	} else if topRowDiff(c, gocubing.Left) == 2 {
		turn(&c.Cube, gocubing.Top, 2, 1, 1, &moves)
	}
	apply(&c.Cube, tPerm, &moves)
	return moves, nil
}

// SolvePLLEdges permutes the last layer edges, finishing the solve. Two
// mismatched faces signal permutation parity, reported as a ParityError.
func SolvePLLEdges(c *gocubing.Cube3x3) ([]string, error) {
	var moves []string
	edgeSwap := gocubing.SexyMoveTimes(1, false) + gocubing.SexyMoveTimes(1, true) +
		gocubing.SexyMoveTimes(-1, false) + gocubing.SexyMoveTimes(-1, true)

	for pass := 0; pass < 2; pass++ {
		var mismatch [4]bool
		count := 0
		for k, f := range sideFaces {
			mismatch[k] = c.At(f, 0, 1) != c.At(f, 0, 0)
			if mismatch[k] {
				count++
			}
		}

		switch count {
		case 0:
		case 2:
			return moves, &ParityError{Kind: ParityPLL}
		case 4:
			apply(&c.Cube, edgeSwap, &moves)
		case 3:
			loc := 0
			for k, m := range mismatch {
				if !m {
					loc = k
					break
				}
			}
			turn(&c.Cube, gocubing.Top, -loc, 1, 1, &moves)
			d := int(c.At(gocubing.Left, 0, 1)) - int(c.At(gocubing.Left, 0, 0))
			if ((d%4)+4)%4 == 2 {
				apply(&c.Cube, edgeSwap, &moves)
			} else {
				apply(&c.Cube, edgeSwap+edgeSwap, &moves)
			}
		}
	}

	for i := 0; !c.FaceUniform(gocubing.Front); i++ {
		if i > 4 {
			return moves, errStuck("final layer alignment")
		}
		turn(&c.Cube, gocubing.Top, 1, 1, 1, &moves)
	}
	return moves, nil
}

// NewPipeline3x3 returns the full beginner-method pipeline for a 3x3.
func NewPipeline3x3() *Pipeline {
	return NewPipeline(
		Stage{"orient centers", "Bring the white center to the bottom.", OrientCenters},
		Stage{"white cross", "Build the white cross on the bottom.", SolveWhiteCross},
		Stage{"first layer corners", "Insert the four white corners.", SolveFirstLayerCorners},
		Stage{"second layer edges", "Complete the first two layers.", SolveSecondLayerEdges},
		Stage{"orient last layer edges", "Make the top cross yellow.", SolveOLLEdges},
		Stage{"orient last layer corners", "Make the whole top face yellow.", SolveOLLCorners},
		Stage{"permute last layer corners", "Place the top corners.", SolvePLLCorners},
		Stage{"permute last layer edges", "Place the top edges and align.", SolvePLLEdges},
	)
}
