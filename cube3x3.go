package gocubing

// Piece maps between the faces a piece currently sits on and the sticker
// colors it shows there, in both directions.
type Piece struct {
	ColorToFace map[Color]Face
	FaceToColor map[Face]Color
}

func pieceFrom(colorToFace map[Color]Face) Piece {
	faceToColor := make(map[Face]Color, len(colorToFace))
	for color, face := range colorToFace {
		faceToColor[face] = color
	}
	return Piece{ColorToFace: colorToFace, FaceToColor: faceToColor}
}

// SameColors reports whether both pieces carry the same color set.
func (p Piece) SameColors(other Piece) bool {
	if len(p.ColorToFace) != len(other.ColorToFace) {
		return false
	}
	for color := range p.ColorToFace {
		if _, ok := other.ColorToFace[color]; !ok {
			return false
		}
	}
	return true
}

// Cube3x3 is a 3x3 cube with piece-locator methods that only make sense at
// that size.
type Cube3x3 struct {
	Cube
}

// NewCube3x3 returns a solved 3x3 cube.
func NewCube3x3() *Cube3x3 {
	return &Cube3x3{Cube: *NewCube(3)}
}

// Get3x3 reduces the cube to its 3x3 form. On a 2x2 the missing edges are
// filled with a placeholder color and centers come from the solved
// reference. On larger cubes every edge run and center block must be
// uniform, otherwise ErrNotSimplifiable is returned.
func (c *Cube) Get3x3() (*Cube3x3, error) {
	out := NewCube3x3()
	n := c.n

	corners := [4][2]int{{0, 2}, {0, 0}, {2, 0}, {2, 2}}
	srcCorners := [4][2]int{{0, n - 1}, {0, 0}, {n - 1, 0}, {n - 1, n - 1}}
	edges := [4][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}}

	if n == 2 {
		for _, f := range Faces {
			for k, corner := range corners {
				out.faces[f][corner[0]][corner[1]] = c.faces[f][srcCorners[k][0]][srcCorners[k][1]]
			}
			for _, edge := range edges {
				out.faces[f][edge[0]][edge[1]] = White
			}
			out.faces[f][1][1] = solvedColor(f)
		}
		return out, nil
	}

	for _, f := range Faces {
		for k, corner := range corners {
			out.faces[f][corner[0]][corner[1]] = c.faces[f][srcCorners[k][0]][srcCorners[k][1]]
		}
		for _, edge := range edges {
			var run []Color
			if edge[0] == 1 {
				col := edge[1] / 2 * (n - 1)
				for i := 1; i < n-1; i++ {
					run = append(run, c.faces[f][i][col])
				}
			} else {
				row := edge[0] / 2 * (n - 1)
				for j := 1; j < n-1; j++ {
					run = append(run, c.faces[f][row][j])
				}
			}
			color, ok := uniformColor(run)
			if !ok {
				return nil, ErrNotSimplifiable
			}
			out.faces[f][edge[0]][edge[1]] = color
		}

		var interior []Color
		for i := 1; i < n-1; i++ {
			for j := 1; j < n-1; j++ {
				interior = append(interior, c.faces[f][i][j])
			}
		}
		color, ok := uniformColor(interior)
		if !ok {
			return nil, ErrNotSimplifiable
		}
		out.faces[f][1][1] = color
	}
	return out, nil
}

func uniformColor(colors []Color) (Color, bool) {
	for _, color := range colors[1:] {
		if color != colors[0] {
			return ColorUnknown, false
		}
	}
	return colors[0], true
}

// GetCenterAt returns the center piece of a face.
func (c *Cube3x3) GetCenterAt(a Face) Piece {
	return pieceFrom(map[Color]Face{c.faces[a][1][1]: a})
}

// GetEdgeBetween returns the edge piece sitting between two adjacent faces.
// Opposite or equal faces share no edge and yield ErrIllegalEdge.
func (c *Cube3x3) GetEdgeBetween(a, b Face) (Piece, error) {
	if AxisOf(a) == AxisOf(b) {
		return Piece{}, ErrIllegalEdge
	}

	aSide := a != Top && a != Bottom
	bSide := b != Top && b != Bottom
	if aSide && bSide {
		if clockwiseSide[a] == b {
			return pieceFrom(map[Color]Face{
				c.faces[a][1][0]: a,
				c.faces[b][1][2]: b,
			}), nil
		}
		return pieceFrom(map[Color]Face{
			c.faces[a][1][2]: a,
			c.faces[b][1][0]: b,
		}), nil
	}

	topFace, sideFace := b, a
	if bSide {
		topFace, sideFace = a, b
	}
	// Row and column on the top or bottom face that borders each side face.
	topIdx := [4][2]int{{2, 1}, {1, 0}, {0, 1}, {1, 2}}[sideFace]
	sideIdx := [2]int{0, 1}
	if topFace == Bottom {
		sideIdx = [2]int{2, 1}
	}
	return pieceFrom(map[Color]Face{
		c.faces[topFace][topIdx[0]][topIdx[1]]:    topFace,
		c.faces[sideFace][sideIdx[0]][sideIdx[1]]: sideFace,
	}), nil
}

// cornerCells lists, per side face, the two cells of the top or bottom face
// that touch that side face. Intersecting the sets of the corner's two side
// faces pins down the exact cell.
var cornerCells = [4][2][2]int{
	Front: {{2, 0}, {2, 2}},
	Left:  {{0, 0}, {2, 0}},
	Back:  {{0, 0}, {0, 2}},
	Right: {{0, 2}, {2, 2}},
}

// GetCornerBetween returns the corner piece shared by three mutually
// adjacent faces. The faces must cover all three axes, otherwise
// ErrIllegalCorner is returned.
func (c *Cube3x3) GetCornerBetween(a, b, d Face) (Piece, error) {
	var xFace, yFace, zFace Face
	var haveX, haveY, haveZ bool
	for _, f := range [3]Face{a, b, d} {
		switch AxisOf(f) {
		case AxisX:
			if haveX {
				return Piece{}, ErrIllegalCorner
			}
			xFace, haveX = f, true
		case AxisY:
			if haveY {
				return Piece{}, ErrIllegalCorner
			}
			yFace, haveY = f, true
		case AxisZ:
			if haveZ {
				return Piece{}, ErrIllegalCorner
			}
			zFace, haveZ = f, true
		}
	}
	if !haveX || !haveY || !haveZ {
		return Piece{}, ErrIllegalCorner
	}

	var yIdx [2]int
	for _, zc := range cornerCells[zFace] {
		for _, xc := range cornerCells[xFace] {
			if zc == xc {
				yIdx = zc
			}
		}
	}

	sideRow := 0
	if yFace == Bottom {
		sideRow = 2
	}
	xCol, zCol := 2, 0
	if clockwiseSide[xFace] == zFace {
		xCol, zCol = 0, 2
	}
	return pieceFrom(map[Color]Face{
		c.faces[yFace][yIdx[0]][yIdx[1]]: yFace,
		c.faces[xFace][sideRow][xCol]:    xFace,
		c.faces[zFace][sideRow][zCol]:    zFace,
	}), nil
}

// GetRotationTo finds the whole-cube rotations that bring this cube into the
// same orientation as other, matching by the corner between the top, left
// and front faces. Both cubes must be reducible to a 3x3 and must be
// rotations of each other.
func (c *Cube) GetRotationTo(other *Cube) ([]string, error) {
	other3, err := other.Get3x3()
	if err != nil {
		return nil, err
	}
	target, err := other3.GetCornerBetween(Top, Left, Front)
	if err != nil {
		return nil, err
	}

	self, err := c.Get3x3()
	if err != nil {
		return nil, err
	}

	var corner Piece
	found := false
	for _, z := range [2]Face{Front, Back} {
		for _, y := range [2]Face{Top, Bottom} {
			for _, x := range [2]Face{Left, Right} {
				p, err := self.GetCornerBetween(x, y, z)
				if err != nil {
					return nil, err
				}
				if p.SameColors(target) {
					corner = p
					found = true
				}
			}
		}
	}
	if !found {
		return nil, ErrInvalidState
	}

	var rotations []string
	_, onBack := corner.FaceToColor[Back]
	_, onLeft := corner.FaceToColor[Left]
	_, onBottom := corner.FaceToColor[Bottom]
	if onBack {
		if err := self.Parse("y2", &rotations); err != nil {
			return nil, err
		}
	}
	if onLeft == onBack {
		if err := self.Parse("y", &rotations); err != nil {
			return nil, err
		}
	}
	if onBottom {
		if err := self.Parse("x", &rotations); err != nil {
			return nil, err
		}
	}

	placed, err := self.GetCornerBetween(Top, Left, Front)
	if err != nil {
		return nil, err
	}
	switch placed.ColorToFace[target.FaceToColor[Front]] {
	case Front:
	case Top:
		if err := self.Parse("y x'", &rotations); err != nil {
			return nil, err
		}
	case Left:
		if err := self.Parse("x y'", &rotations); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidState
	}
	return rotations, nil
}
