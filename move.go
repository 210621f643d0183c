package gocubing

import (
	"strconv"
)

// Move describes one primitive turn: the face turned, the clockwise
// quarter-turn count, how deep the turn's outer boundary sits, and how many
// consecutive layers rotate together.
//
// Layer counts inward from the named face, 1 being the outermost layer.
// Width counts further inward from Layer, so a plain face turn is
// Layer=1, Width=1 and a whole-cube rotation is Layer=Width=N.
type Move struct {
	Face  Face
	Dist  int // clockwise quarter turns, interpreted mod 4
	Layer int
	Width int
}

// ParseToken parses a single move token into a Move for a cube of side n.
//
// Accepted forms: R, R', R2, 2R, Rw, 2Rw, lowercase wide letters (r == Rw),
// and the whole-cube rotations x, y, z with optional ' or 2 suffixes.
func ParseToken(token string, n int) (Move, error) {
	if token == "" {
		return Move{}, ErrInvalidNotation
	}

	// Leading digits select the layer.
	i := 0
	for i < len(token) && token[i] >= '0' && token[i] <= '9' {
		i++
	}
	layerDigits := token[:i]
	if i == len(token) {
		return Move{}, ErrInvalidNotation
	}

	letter := token[i]
	i++

	wide := false
	if i < len(token) && token[i] == 'w' {
		wide = true
		i++
	}

	dist := 1
	switch token[i:] {
	case "":
	case "'":
		dist = -1
	case "2":
		dist = 2
	default:
		return Move{}, ErrInvalidNotation
	}

	// Whole-cube rotations expand to a full-width turn of the mapped face.
	if face, ok := rotationFace(letter); ok {
		if layerDigits != "" || wide {
			return Move{}, ErrInvalidNotation
		}
		return Move{Face: face, Dist: dist, Layer: n, Width: n}, nil
	}

	face, ok := FaceFromLetter(letter)
	if !ok {
		return Move{}, ErrInvalidNotation
	}

	// A lowercase face letter is wide shorthand: it behaves like a trailing
	// w, with any numeric prefix still naming the layer depth.
	lower := letter >= 'a' && letter <= 'z'

	layer := 1
	if layerDigits != "" {
		v, err := strconv.Atoi(layerDigits)
		if err != nil || v < 1 {
			return Move{}, ErrInvalidNotation
		}
		layer = v
	} else if wide || lower {
		layer = 2
	}

	width := 1
	if wide || lower {
		width = layer
	}

	return Move{Face: face, Dist: dist, Layer: layer, Width: width}, nil
}

// distSuffix renders the notation suffix for a normalized distance.
func distSuffix(dist int) string {
	switch dist {
	case 2:
		return "2"
	case 3:
		return "'"
	default:
		return ""
	}
}

// GetMove renders a turn as its minimal token form for a cube of side n.
//
// A zero-distance turn renders as no tokens. A full-width turn renders as a
// single rotation token. A turn whose width is smaller than its layer depth
// renders as two tokens: a wide turn of the outer layers plus a compensating
// opposite turn of the remaining inner layers, which keeps those inner
// layers stationary relative to the rest of the cube.
func GetMove(face Face, dist, layer, width, n int) ([]string, error) {
	if width > layer {
		return nil, ErrInvalidTurn
	}
	dist = ((dist % 4) + 4) % 4
	if dist == 0 {
		return nil, nil
	}

	if layer == width && width == n {
		letter, primed := rotationLetter(face)
		eff := dist
		if primed {
			eff = 4 - dist
		}
		return []string{string(letter) + distSuffix(eff)}, nil
	}

	layerStr := ""
	if layer != 1 {
		layerStr = strconv.Itoa(layer)
	}

	switch {
	case width == 1:
		return []string{layerStr + face.String() + distSuffix(dist)}, nil
	case width == layer:
		return []string{layerStr + face.String() + "w" + distSuffix(dist)}, nil
	default:
		inner := layer - width
		innerStr := ""
		innerWide := ""
		if inner != 1 {
			innerStr = strconv.Itoa(inner)
			innerWide = "w"
		}
		return []string{
			layerStr + face.String() + "w" + distSuffix(dist),
			innerStr + face.String() + innerWide + distSuffix(4-dist),
		}, nil
	}
}

// Tokens renders the move in minimal token form for a cube of side n.
func (m Move) Tokens(n int) ([]string, error) {
	return GetMove(m.Face, m.Dist, m.Layer, m.Width, n)
}
