package gocubing

import (
	"errors"
	"strings"
	"testing"
)

func TestGet3x3FromReducedBigCube(t *testing.T) {
	c := NewCube(5)
	// Outer turns keep centers and edge runs uniform, so the cube stays
	// reducible.
	if err := c.Parse("R U F' D2 L B", nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	small, err := c.Get3x3()
	if err != nil {
		t.Fatalf("Get3x3: %v", err)
	}

	reference := NewCube(3)
	if err := reference.Parse("R U F' D2 L B", nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if small.String() != reference.String() {
		t.Errorf("reduced cube %q, want %q", small.String(), reference.String())
	}
}

func TestGet3x3NotSimplifiable(t *testing.T) {
	c := NewCube(4)
	// An inner slice turn splits edge runs, so reduction must fail.
	if err := c.Turn(Right, 1, 2, 1, nil); err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if _, err := c.Get3x3(); !errors.Is(err, ErrNotSimplifiable) {
		t.Errorf("Get3x3 error = %v, want ErrNotSimplifiable", err)
	}
}

func TestGet3x3From2x2(t *testing.T) {
	c := NewCube(2)
	small, err := c.Get3x3()
	if err != nil {
		t.Fatalf("Get3x3: %v", err)
	}

	// Corners carry over, centers take the solved color.
	for _, f := range Faces {
		if got := small.At(f, 0, 0); got != solvedColor(f) {
			t.Errorf("corner of %v = %v, want %v", f, got, solvedColor(f))
		}
		if got := small.At(f, 1, 1); got != solvedColor(f) {
			t.Errorf("center of %v = %v, want %v", f, got, solvedColor(f))
		}
	}
	// Edges are filler.
	if got := small.At(Front, 0, 1); got != White {
		t.Errorf("edge filler = %v, want White", got)
	}
}

func TestGetEdgeBetween(t *testing.T) {
	c := NewCube3x3()

	edge, err := c.GetEdgeBetween(Front, Right)
	if err != nil {
		t.Fatalf("GetEdgeBetween: %v", err)
	}
	if edge.FaceToColor[Front] != Green || edge.FaceToColor[Right] != Red {
		t.Errorf("front-right edge = %v", edge.FaceToColor)
	}

	edge, err = c.GetEdgeBetween(Top, Back)
	if err != nil {
		t.Fatalf("GetEdgeBetween: %v", err)
	}
	if edge.FaceToColor[Top] != White || edge.FaceToColor[Back] != Blue {
		t.Errorf("top-back edge = %v", edge.FaceToColor)
	}

	// Argument order does not matter, even with the side face first.
	edge, err = c.GetEdgeBetween(Front, Top)
	if err != nil {
		t.Fatalf("GetEdgeBetween: %v", err)
	}
	if edge.FaceToColor[Front] != Green || edge.FaceToColor[Top] != White {
		t.Errorf("front-top edge = %v", edge.FaceToColor)
	}

	edge, err = c.GetEdgeBetween(Right, Bottom)
	if err != nil {
		t.Fatalf("GetEdgeBetween: %v", err)
	}
	if edge.FaceToColor[Right] != Red || edge.FaceToColor[Bottom] != Yellow {
		t.Errorf("right-bottom edge = %v", edge.FaceToColor)
	}
}

func TestGetEdgeBetweenIllegal(t *testing.T) {
	c := NewCube3x3()
	for _, pair := range [][2]Face{{Front, Back}, {Left, Right}, {Top, Bottom}, {Front, Front}} {
		if _, err := c.GetEdgeBetween(pair[0], pair[1]); !errors.Is(err, ErrIllegalEdge) {
			t.Errorf("GetEdgeBetween(%v, %v) error = %v, want ErrIllegalEdge", pair[0], pair[1], err)
		}
	}
}

func TestGetCornerBetween(t *testing.T) {
	c := NewCube3x3()

	corner, err := c.GetCornerBetween(Front, Right, Top)
	if err != nil {
		t.Fatalf("GetCornerBetween: %v", err)
	}
	want := map[Face]Color{Front: Green, Right: Red, Top: White}
	for f, color := range want {
		if corner.FaceToColor[f] != color {
			t.Errorf("corner color on %v = %v, want %v", f, corner.FaceToColor[f], color)
		}
	}

	// Argument order does not matter.
	again, err := c.GetCornerBetween(Top, Front, Right)
	if err != nil {
		t.Fatalf("GetCornerBetween: %v", err)
	}
	if !corner.SameColors(again) {
		t.Error("argument order changed the corner")
	}
}

func TestGetCornerBetweenIllegal(t *testing.T) {
	c := NewCube3x3()
	for _, triple := range [][3]Face{
		{Top, Bottom, Front},
		{Front, Back, Right},
		{Front, Right, Left},
		{Front, Front, Top},
	} {
		if _, err := c.GetCornerBetween(triple[0], triple[1], triple[2]); !errors.Is(err, ErrIllegalCorner) {
			t.Errorf("GetCornerBetween(%v) error = %v, want ErrIllegalCorner", triple, err)
		}
	}
}

func TestGetRotationTo(t *testing.T) {
	base := NewCube3x3()
	if err := base.Parse("R U F' L D2 B U'", nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	for _, rotation := range []string{"", "y", "y2", "x", "x'", "y x'", "z"} {
		target := base.Clone()
		if rotation != "" {
			if err := target.Parse(rotation, nil); err != nil {
				t.Fatalf("Parse %q: %v", rotation, err)
			}
		}

		moves, err := base.GetRotationTo(target)
		if err != nil {
			t.Fatalf("GetRotationTo after %q: %v", rotation, err)
		}

		aligned := base.Clone()
		if err := aligned.Parse(strings.Join(moves, " "), nil); err != nil {
			t.Fatalf("Parse rotation moves: %v", err)
		}
		if !aligned.Equal(target) {
			t.Errorf("rotation %q: moves %v did not align the cube", rotation, moves)
		}
	}
}
