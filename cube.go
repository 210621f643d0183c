package gocubing

import (
	"math/rand"
	"strings"
)

// Cube holds the sticker state of an NxN cube as six row-major color grids,
// one per face, indexed by Face. Row 0 of a side face is the row adjacent to
// the top face; the top and bottom faces are oriented as seen when tilting
// the cube toward the viewer.
type Cube struct {
	n     int
	faces [6][][]Color
}

// NewCube returns a solved cube with the given side length.
func NewCube(n int) *Cube {
	c := &Cube{n: n}
	for _, f := range Faces {
		c.faces[f] = uniformGrid(n, solvedColor(f))
	}
	return c
}

func uniformGrid(n int, color Color) [][]Color {
	grid := make([][]Color, n)
	for i := range grid {
		grid[i] = make([]Color, n)
		for j := range grid[i] {
			grid[i][j] = color
		}
	}
	return grid
}

// FromString rebuilds a cube from its flat serialization: 6*N*N color
// characters in face order front, left, back, right, top, bottom, each face
// row-major.
func FromString(s string) (*Cube, error) {
	n := 0
	for n*n*6 < len(s) {
		n++
	}
	if n*n*6 != len(s) || n == 0 {
		return nil, ErrInvalidState
	}

	c := &Cube{n: n}
	pos := 0
	for _, f := range Faces {
		grid := make([][]Color, n)
		for i := range grid {
			grid[i] = make([]Color, n)
			for j := range grid[i] {
				color, ok := ColorFromByte(s[pos])
				if !ok {
					return nil, ErrInvalidState
				}
				grid[i][j] = color
				pos++
			}
		}
		c.faces[f] = grid
	}
	return c, nil
}

// String returns the flat serialization accepted by FromString.
func (c *Cube) String() string {
	var b strings.Builder
	b.Grow(6 * c.n * c.n)
	for _, f := range Faces {
		for _, row := range c.faces[f] {
			for _, color := range row {
				b.WriteString(color.String())
			}
		}
	}
	return b.String()
}

// Size returns the cube's side length.
func (c *Cube) Size() int { return c.n }

// Grid returns the mutable sticker grid of one face.
func (c *Cube) Grid(f Face) [][]Color { return c.faces[f] }

// At returns the sticker color at row i, column j of a face.
func (c *Cube) At(f Face, i, j int) Color { return c.faces[f][i][j] }

// Clone returns a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	out := &Cube{n: c.n}
	for _, f := range Faces {
		grid := make([][]Color, c.n)
		for i, row := range c.faces[f] {
			grid[i] = append([]Color(nil), row...)
		}
		out.faces[f] = grid
	}
	return out
}

// Equal reports whether both cubes hold identical sticker grids.
func (c *Cube) Equal(other *Cube) bool {
	if c.n != other.n {
		return false
	}
	for _, f := range Faces {
		for i := range c.faces[f] {
			for j := range c.faces[f][i] {
				if c.faces[f][i][j] != other.faces[f][i][j] {
					return false
				}
			}
		}
	}
	return true
}

// IsSolved reports whether every face shows a single color.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		if !c.FaceUniform(f) {
			return false
		}
	}
	return true
}

// FaceUniform reports whether one face shows a single color.
func (c *Cube) FaceUniform(f Face) bool {
	first := c.faces[f][0][0]
	for _, row := range c.faces[f] {
		for _, color := range row {
			if color != first {
				return false
			}
		}
	}
	return true
}

// Band helpers. Extractions copy so a later write within the same turn step
// never sees partially updated stickers.

// colBand copies columns lo..hi (exclusive) of a grid, keeping row order.
func colBand(grid [][]Color, lo, hi int) [][]Color {
	out := make([][]Color, len(grid))
	for i, row := range grid {
		out[i] = append([]Color(nil), row[lo:hi]...)
	}
	return out
}

// rowBand copies rows lo..hi (exclusive) of a grid.
func rowBand(grid [][]Color, lo, hi int) [][]Color {
	out := make([][]Color, hi-lo)
	for i := range out {
		out[i] = append([]Color(nil), grid[lo+i]...)
	}
	return out
}

func setColBand(grid [][]Color, lo int, band [][]Color) {
	for i, row := range band {
		copy(grid[i][lo:lo+len(row)], row)
	}
}

func setRowBand(grid [][]Color, lo int, band [][]Color) {
	for i, row := range band {
		copy(grid[lo+i], row)
	}
}

// flipRows reverses the row order of a band.
func flipRows(band [][]Color) [][]Color {
	out := make([][]Color, len(band))
	for i, row := range band {
		out[len(band)-1-i] = row
	}
	return out
}

// flipCols reverses each row of a band.
func flipCols(band [][]Color) [][]Color {
	out := make([][]Color, len(band))
	for i, row := range band {
		r := make([]Color, len(row))
		for j, color := range row {
			r[len(row)-1-j] = color
		}
		out[i] = r
	}
	return out
}

func transpose(band [][]Color) [][]Color {
	if len(band) == 0 {
		return nil
	}
	out := make([][]Color, len(band[0]))
	for j := range out {
		out[j] = make([]Color, len(band))
		for i := range band {
			out[j][i] = band[i][j]
		}
	}
	return out
}

// rotateGrid rotates a square grid clockwise the given number of quarter
// turns.
func rotateGrid(grid [][]Color, turns int) [][]Color {
	turns = ((turns % 4) + 4) % 4
	for ; turns > 0; turns-- {
		n := len(grid)
		out := make([][]Color, n)
		for i := range out {
			out[i] = make([]Color, n)
			for j := range out[i] {
				out[i][j] = grid[n-1-j][i]
			}
		}
		grid = out
	}
	return grid
}

func (c *Cube) rotateFace(f Face, turns int) {
	c.faces[f] = rotateGrid(c.faces[f], turns)
}

// Turn rotates width layers of the cube, the innermost of them layer deep
// from the named face, dist quarter turns clockwise as seen from that face.
// When out is non-nil the turn's token rendering is appended to it.
func (c *Cube) Turn(face Face, dist, layer, width int, out *[]string) error {
	if width < 1 || layer-width < 0 || layer > c.n {
		return ErrInvalidTurn
	}
	dist = ((dist % 4) + 4) % 4

	switch face {
	case Right:
		c.turnRight(dist, layer, width)
	case Left:
		c.turnLeft(dist, layer, width)
	case Top:
		c.turnUp(dist, layer, width)
	case Bottom:
		c.turnDown(dist, layer, width)
	case Front:
		c.turnFront(dist, layer, width)
	case Back:
		c.turnBack(dist, layer, width)
	default:
		return ErrInvalidTurn
	}

	if out != nil {
		tokens, err := GetMove(face, dist, layer, width, c.n)
		if err != nil {
			return err
		}
		*out = append(*out, tokens...)
	}
	return nil
}

func (c *Cube) turnRight(dist, layer, width int) {
	if layer == width {
		c.rotateFace(Right, dist)
	}
	if layer == c.n {
		c.rotateFace(Left, -dist)
	}
	lo, hi := c.n-layer, c.n-layer+width
	for ; dist > 0; dist-- {
		front := colBand(c.faces[Front], lo, hi)
		top := colBand(c.faces[Top], lo, hi)
		back := flipCols(colBand(c.faces[Back], layer-width, layer))
		bottom := colBand(c.faces[Bottom], lo, hi)

		setColBand(c.faces[Top], lo, front)
		setColBand(c.faces[Back], layer-width, flipCols(flipRows(top)))
		setColBand(c.faces[Bottom], lo, back)
		setColBand(c.faces[Front], lo, flipRows(bottom))
	}
}

func (c *Cube) turnLeft(dist, layer, width int) {
	if layer == width {
		c.rotateFace(Left, dist)
	}
	if layer == c.n {
		c.rotateFace(Right, -dist)
	}
	lo, hi := layer-width, layer
	for ; dist > 0; dist-- {
		front := colBand(c.faces[Front], lo, hi)
		top := colBand(c.faces[Top], lo, hi)
		back := flipCols(colBand(c.faces[Back], c.n-layer, c.n-layer+width))
		bottom := colBand(c.faces[Bottom], lo, hi)

		setColBand(c.faces[Bottom], lo, flipRows(front))
		setColBand(c.faces[Front], lo, top)
		setColBand(c.faces[Top], lo, flipRows(back))
		setColBand(c.faces[Back], c.n-layer, flipCols(bottom))
	}
}

func (c *Cube) turnUp(dist, layer, width int) {
	if layer == width {
		c.rotateFace(Top, dist)
	}
	if layer == c.n {
		c.rotateFace(Bottom, dist)
	}
	lo, hi := layer-width, layer
	for ; dist > 0; dist-- {
		front := rowBand(c.faces[Front], lo, hi)
		left := rowBand(c.faces[Left], lo, hi)
		back := rowBand(c.faces[Back], lo, hi)
		right := rowBand(c.faces[Right], lo, hi)

		setRowBand(c.faces[Left], lo, front)
		setRowBand(c.faces[Back], lo, left)
		setRowBand(c.faces[Right], lo, back)
		setRowBand(c.faces[Front], lo, right)
	}
}

func (c *Cube) turnDown(dist, layer, width int) {
	if layer == width {
		c.rotateFace(Bottom, -dist)
	}
	if layer == c.n {
		c.rotateFace(Top, -dist)
	}
	lo, hi := c.n-layer, c.n-layer+width
	for ; dist > 0; dist-- {
		front := rowBand(c.faces[Front], lo, hi)
		left := rowBand(c.faces[Left], lo, hi)
		back := rowBand(c.faces[Back], lo, hi)
		right := rowBand(c.faces[Right], lo, hi)

		setRowBand(c.faces[Right], lo, front)
		setRowBand(c.faces[Front], lo, left)
		setRowBand(c.faces[Left], lo, back)
		setRowBand(c.faces[Back], lo, right)
	}
}

func (c *Cube) turnFront(dist, layer, width int) {
	if layer == width {
		c.rotateFace(Front, dist)
	}
	if layer == c.n {
		c.rotateFace(Back, -dist)
	}
	for ; dist > 0; dist-- {
		top := transpose(rowBand(c.faces[Top], c.n-layer, c.n-layer+width))
		right := transpose(flipCols(colBand(c.faces[Right], layer-width, layer)))
		bottom := transpose(rowBand(c.faces[Bottom], c.n-layer, c.n-layer+width))
		left := transpose(colBand(c.faces[Left], c.n-layer, c.n-layer+width))

		setColBand(c.faces[Right], layer-width, flipCols(top))
		setRowBand(c.faces[Bottom], c.n-layer, flipCols(right))
		setColBand(c.faces[Left], c.n-layer, bottom)
		setRowBand(c.faces[Top], c.n-layer, flipCols(left))
	}
}

func (c *Cube) turnBack(dist, layer, width int) {
	if layer == width {
		c.rotateFace(Back, dist)
	}
	if layer == c.n {
		c.rotateFace(Front, -dist)
	}
	for ; dist > 0; dist-- {
		top := transpose(flipCols(rowBand(c.faces[Top], layer-width, layer)))
		right := transpose(flipCols(colBand(c.faces[Right], c.n-layer, c.n-layer+width)))
		bottom := transpose(flipCols(rowBand(c.faces[Bottom], layer-width, layer)))
		left := transpose(colBand(c.faces[Left], layer-width, layer))

		setColBand(c.faces[Left], layer-width, top)
		setRowBand(c.faces[Top], layer-width, right)
		setColBand(c.faces[Right], c.n-layer, flipCols(bottom))
		setRowBand(c.faces[Bottom], layer-width, left)
	}
}

// Parse applies a whitespace-delimited move sequence to the cube. When out
// is non-nil each applied turn's normalized tokens are appended to it.
func (c *Cube) Parse(moves string, out *[]string) error {
	for _, token := range strings.Fields(moves) {
		mv, err := ParseToken(token, c.n)
		if err != nil {
			return err
		}
		if err := c.Turn(mv.Face, mv.Dist, mv.Layer, mv.Width, out); err != nil {
			return err
		}
	}
	return nil
}

// Scramble applies a random move sequence sized to the cube and returns the
// tokens applied. A nil source falls back to the shared package source.
func (c *Cube) Scramble(r *rand.Rand) ([]string, error) {
	if c.n < 2 {
		return nil, nil
	}
	intn := rand.Intn
	if r != nil {
		intn = r.Intn
	}

	var moves []string
	for i := 0; i < c.n*c.n*2; i++ {
		dist := 1 + intn(3)
		layer := 1 + intn(c.n)
		width := 1 + intn(layer)
		face := Faces[intn(6)]
		tokens, err := GetMove(face, dist, layer, width, c.n)
		if err != nil {
			return nil, err
		}
		moves = append(moves, tokens...)
	}
	if err := c.Parse(strings.Join(moves, " "), nil); err != nil {
		return nil, err
	}
	return moves, nil
}
