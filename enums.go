package gocubing

// Color represents a facelet color. The numeric order matches the face each
// color occupies on a solved cube (green front, orange left, white top).
type Color byte

const (
	Green  Color = 0
	Orange Color = 1
	Blue   Color = 2
	Red    Color = 3
	White  Color = 4
	Yellow Color = 5

	// ColorUnknown marks an undetermined cell in a vision observation.
	ColorUnknown Color = 0xFF
)

func (c Color) String() string {
	switch c {
	case Green:
		return "g"
	case Orange:
		return "o"
	case Blue:
		return "b"
	case Red:
		return "r"
	case White:
		return "w"
	case Yellow:
		return "y"
	default:
		return "?"
	}
}

// ColorFromByte maps a flat-string character to its Color.
func ColorFromByte(b byte) (Color, bool) {
	switch b {
	case 'g':
		return Green, true
	case 'o':
		return Orange, true
	case 'b':
		return Blue, true
	case 'r':
		return Red, true
	case 'w':
		return White, true
	case 'y':
		return Yellow, true
	default:
		return 0, false
	}
}

// Face identifies one of the six cube faces. The numeric order is the flat
// string serialization order and must not change.
type Face int

const (
	Front  Face = 0
	Left   Face = 1
	Back   Face = 2
	Right  Face = 3
	Top    Face = 4
	Bottom Face = 5
)

func (f Face) String() string {
	switch f {
	case Front:
		return "F"
	case Left:
		return "L"
	case Back:
		return "B"
	case Right:
		return "R"
	case Top:
		return "U"
	case Bottom:
		return "D"
	default:
		return "?"
	}
}

// Faces lists all six faces in serialization order.
var Faces = [6]Face{Front, Left, Back, Right, Top, Bottom}

// SideFaces lists the four side faces in their clockwise cycle order
// (viewed with white on top).
var SideFaces = [4]Face{Front, Left, Back, Right}

// opposites pairs each face with the face on the other side of the cube.
var opposites = [6]Face{
	Front:  Back,
	Left:   Right,
	Back:   Front,
	Right:  Left,
	Top:    Bottom,
	Bottom: Top,
}

// Opposite returns the face opposite f.
func Opposite(f Face) Face { return opposites[f] }

// clockwiseSide maps each side face to its successor in the side cycle.
// Defined only for the four side faces.
var clockwiseSide = map[Face]Face{
	Front: Left,
	Left:  Back,
	Back:  Right,
	Right: Front,
}

// Axis names the rotation axis a face sits on.
type Axis byte

const (
	AxisX Axis = 'x' // left/right
	AxisY Axis = 'y' // top/bottom
	AxisZ Axis = 'z' // front/back
)

// axisOf maps each face to its axis.
var axisOf = [6]Axis{
	Front:  AxisZ,
	Left:   AxisX,
	Back:   AxisZ,
	Right:  AxisX,
	Top:    AxisY,
	Bottom: AxisY,
}

// AxisOf returns the axis the face belongs to.
func AxisOf(f Face) Axis { return axisOf[f] }

// solvedColor returns the color a face carries on a solved cube.
func solvedColor(f Face) Color { return Color(f) }

// FaceFromLetter maps a notation letter to the face it turns.
func FaceFromLetter(b byte) (Face, bool) {
	switch b {
	case 'R', 'r':
		return Right, true
	case 'L', 'l':
		return Left, true
	case 'U', 'u':
		return Top, true
	case 'D', 'd':
		return Bottom, true
	case 'F', 'f':
		return Front, true
	case 'B', 'b':
		return Back, true
	default:
		return 0, false
	}
}

// rotationFace maps a whole-cube rotation letter to the face whose turn
// direction it follows.
func rotationFace(b byte) (Face, bool) {
	switch b {
	case 'x':
		return Right, true
	case 'y':
		return Top, true
	case 'z':
		return Front, true
	default:
		return 0, false
	}
}

// rotationLetter maps a face to its whole-cube rotation letter and whether
// the rotation runs opposite to the face's own turn direction.
func rotationLetter(f Face) (byte, bool) {
	switch f {
	case Right:
		return 'x', false
	case Left:
		return 'x', true
	case Top:
		return 'y', false
	case Bottom:
		return 'y', true
	case Front:
		return 'z', false
	case Back:
		return 'z', true
	default:
		return 0, false
	}
}
