package gocubing

import (
	"strings"
)

// RootOf strips the distance suffix from a token, leaving the part that
// identifies which layers move.
func RootOf(token string) string {
	return strings.TrimRight(token, "'2")
}

// DistOf reports the clockwise quarter-turn distance a token encodes.
func DistOf(token string) int {
	if token == "" {
		return 0
	}
	switch token[len(token)-1] {
	case '\'':
		return 3
	case '2':
		return 2
	default:
		return 1
	}
}

// FinalMove rebuilds a token from a root and an accumulated distance.
func FinalMove(root string, dist int) string {
	return root + distSuffix(((dist%4)+4)%4)
}

// Compress merges adjacent tokens that share a root into a single token and
// drops runs that cancel to nothing. Cancellation can expose a new adjacent
// pair, so merging continues against the tail until it settles; the result
// is a fixpoint and compressing twice changes nothing.
//
//	Compress([]string{"R", "R", "R"})             == []string{"R'"}
//	Compress([]string{"Rw", "Rw"})                == []string{"Rw2"}
//	Compress([]string{"U", "R", "R'", "U'"})      == nil
func Compress(moves []string) []string {
	var out []string
	for _, m := range moves {
		root := RootOf(m)
		dist := DistOf(m)
		for len(out) > 0 && RootOf(out[len(out)-1]) == root {
			dist += DistOf(out[len(out)-1])
			out = out[:len(out)-1]
		}
		if dist%4 != 0 {
			out = append(out, FinalMove(root, dist))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Reverse returns the moves that undo the given sequence.
func Reverse(moves []string) []string {
	out := make([]string, 0, len(moves))
	for i := len(moves) - 1; i >= 0; i-- {
		out = append(out, FinalMove(RootOf(moves[i]), -DistOf(moves[i])))
	}
	return out
}

// SexyMoveTimes builds a space-delimited string repeating the four-move
// corner cycle n times, taking the shorter inverse direction past three
// repetitions. The left-hand variant mirrors it onto the L face.
func SexyMoveTimes(n int, leftHand bool) string {
	n %= 6
	if n < 0 {
		n += 6
	}
	if n == 0 {
		return "  "
	}

	var unit string
	if n > 3 {
		if leftHand {
			unit = "U' L' U L "
		} else {
			unit = "U R U' R' "
		}
	} else {
		if leftHand {
			unit = "L' U' L U "
		} else {
			unit = "R U R' U' "
		}
	}

	reps := n
	if 6-n < reps {
		reps = 6 - n
	}
	return " " + strings.TrimSpace(strings.Repeat(unit, reps)) + " "
}

// Convert3x3MovesToNxN lifts a 3x3 solution onto an NxN cube whose centers
// and edges are already reduced. Outer-layer turns carry over unchanged;
// second-layer and whole-slab turns widen so the reduced blocks move as one.
func Convert3x3MovesToNxN(moves []string, n int) ([]string, error) {
	var out []string
	for _, m := range moves {
		mv, err := ParseToken(m, 3)
		if err != nil {
			return nil, err
		}
		if mv.Layer == 1 {
			out = append(out, m)
			continue
		}
		var layer, width int
		if mv.Layer == 2 {
			width = n - 3 + mv.Width
			layer = n - 1
		} else {
			if mv.Width == 1 {
				width = 1
			} else {
				width = n - 3 + mv.Width
			}
			layer = n
		}
		tokens, err := GetMove(mv.Face, mv.Dist, layer, width, n)
		if err != nil {
			return nil, err
		}
		out = append(out, tokens...)
	}
	return out, nil
}

// Convert3x3MovesTo2x2 projects a 3x3 solution onto a 2x2, collapsing the
// middle layer out of every move.
func Convert3x3MovesTo2x2(moves []string) ([]string, error) {
	var out []string
	for _, m := range moves {
		mv, err := ParseToken(m, 3)
		if err != nil {
			return nil, err
		}
		if mv.Layer == 1 {
			out = append(out, m)
			continue
		}
		if mv.Layer == 2 && mv.Width == 1 {
			// A middle slice has no stickers on a 2x2.
			continue
		}
		var layer, width int
		if mv.Layer == 2 {
			layer, width = 1, 1
		} else {
			if mv.Width == 3 {
				width = 2
			} else {
				width = 1
			}
			layer = 2
		}
		tokens, err := GetMove(mv.Face, mv.Dist, layer, width, 2)
		if err != nil {
			return nil, err
		}
		out = append(out, tokens...)
	}
	return out, nil
}
