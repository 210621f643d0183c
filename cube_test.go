package gocubing

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func solvedState(n int) string {
	var sb strings.Builder
	for _, f := range Faces {
		sb.WriteString(strings.Repeat(solvedColor(f).String(), n*n))
	}
	return sb.String()
}

func TestNewCubeSolved(t *testing.T) {
	for n := 1; n <= 6; n++ {
		c := NewCube(n)
		if !c.IsSolved() {
			t.Errorf("NewCube(%d) not solved", n)
		}
		if got, want := c.String(), solvedState(n); got != want {
			t.Errorf("NewCube(%d).String() = %q, want %q", n, got, want)
		}
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	c := NewCube(4)
	if err := c.Parse("R U2 3Fw' D", nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	state := c.String()
	back, err := FromString(state)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if !c.Equal(back) {
		t.Errorf("round trip changed state: %q != %q", back.String(), state)
	}
	if back.Size() != 4 {
		t.Errorf("Size = %d, want 4", back.Size())
	}
}

func TestFromStringInvalid(t *testing.T) {
	tests := []string{
		"",
		"ggg",                              // not 6*n*n for any n
		strings.Repeat("g", 6*9-1),         // off by one
		strings.Repeat("q", 6*9),           // bad letter
		strings.Repeat("g", 6*4) + "extra", // bad length
	}
	for _, s := range tests {
		if _, err := FromString(s); !errors.Is(err, ErrInvalidState) {
			t.Errorf("FromString(%q) error = %v, want ErrInvalidState", s, err)
		}
	}
}

func TestQuarterTurnsCancel(t *testing.T) {
	for n := 2; n <= 5; n++ {
		for _, f := range Faces {
			c := NewCube(n)
			for i := 0; i < 4; i++ {
				if err := c.Turn(f, 1, 1, 1, nil); err != nil {
					t.Fatalf("Turn(%v) on %dx%d: %v", f, n, n, err)
				}
			}
			if !c.IsSolved() {
				t.Errorf("four %v quarter turns on %dx%d did not cancel", f, n, n)
			}
		}
	}
}

func TestSliceTurnsCancel(t *testing.T) {
	c := NewCube(5)
	for i := 0; i < 4; i++ {
		if err := c.Turn(Top, 1, 3, 2, nil); err != nil {
			t.Fatalf("Turn: %v", err)
		}
	}
	if !c.IsSolved() {
		t.Error("four slice turns did not cancel")
	}
}

func TestSexyMoveOrderSix(t *testing.T) {
	c := NewCube(3)
	for i := 0; i < 6; i++ {
		if err := c.Parse("R U R' U'", nil); err != nil {
			t.Fatalf("Parse: %v", err)
		}
	}
	if !c.IsSolved() {
		t.Error("six sexy moves did not return to solved")
	}
}

func TestRotationsCancel(t *testing.T) {
	c := NewCube(4)
	if err := c.Parse("x y z z' y' x'", nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !c.IsSolved() {
		t.Error("rotations and their inverses did not cancel")
	}
}

func TestParseReverseRestores(t *testing.T) {
	c := NewCube(4)
	scramble := "R U F' 2L D2 Bw 3Uw' F"

	var applied []string
	if err := c.Parse(scramble, &applied); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.IsSolved() {
		t.Fatal("scramble left cube solved")
	}

	undo := strings.Join(Reverse(applied), " ")
	if err := c.Parse(undo, nil); err != nil {
		t.Fatalf("Parse undo: %v", err)
	}
	if !c.IsSolved() {
		t.Error("reversed moves did not restore the cube")
	}
}

func TestWideDecompositionEquivalence(t *testing.T) {
	// Rendering a turn whose width is below its layer depth produces two
	// tokens; parsing them back must reproduce the original turn exactly.
	a := NewCube(5)
	if err := a.Turn(Right, 1, 4, 2, nil); err != nil {
		t.Fatalf("Turn: %v", err)
	}

	tokens, err := GetMove(Right, 1, 4, 2, 5)
	if err != nil {
		t.Fatalf("GetMove: %v", err)
	}
	b := NewCube(5)
	if err := b.Parse(strings.Join(tokens, " "), nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !a.Equal(b) {
		t.Errorf("decomposed turn state %q != direct turn state %q", b.String(), a.String())
	}
}

func TestDeepWideNotationEquivalence(t *testing.T) {
	// On a 7x7, 2Rw turns the two rightmost layers and 5R turns the fifth
	// layer from the right alone. The same block is reachable from the
	// left: r covers the right pair, and l then 3l' cancel on the first
	// two left layers, leaving only the third layer from the left turning
	// counterclockwise.
	a := NewCube(7)
	if err := a.Parse("2Rw 5R", nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	b := NewCube(7)
	if err := b.Parse("r 3l' l", nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !a.Equal(b) {
		t.Errorf("state %q != state %q", a.String(), b.String())
	}
}

func TestTurnInvalid(t *testing.T) {
	c := NewCube(3)
	tests := []struct {
		dist, layer, width int
	}{
		{1, 1, 0}, // zero width
		{1, 4, 1}, // layer beyond cube
		{1, 2, 3}, // width exceeds layer
		{1, 0, 1}, // no layer
	}
	for _, tt := range tests {
		if err := c.Turn(Right, tt.dist, tt.layer, tt.width, nil); !errors.Is(err, ErrInvalidTurn) {
			t.Errorf("Turn(dist=%d layer=%d width=%d) error = %v, want ErrInvalidTurn",
				tt.dist, tt.layer, tt.width, err)
		}
	}
}

func TestParseUnknownToken(t *testing.T) {
	c := NewCube(3)
	if err := c.Parse("R Q U", nil); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("Parse error = %v, want ErrInvalidNotation", err)
	}
}

func TestScramble(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		c := NewCube(n)
		moves, err := c.Scramble(rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatalf("Scramble(%d): %v", n, err)
		}
		if len(moves) == 0 {
			t.Fatalf("Scramble(%d) produced no moves", n)
		}
		if c.IsSolved() {
			t.Errorf("Scramble(%d) left cube solved", n)
		}

		// Replaying the returned moves from solved reproduces the state.
		replay := NewCube(n)
		if err := replay.Parse(strings.Join(moves, " "), nil); err != nil {
			t.Fatalf("replay Parse: %v", err)
		}
		if !replay.Equal(c) {
			t.Errorf("Scramble(%d) moves do not reproduce the state", n)
		}
	}
}

func TestScrambleTrivialCube(t *testing.T) {
	c := NewCube(1)
	moves, err := c.Scramble(nil)
	if err != nil {
		t.Fatalf("Scramble: %v", err)
	}
	if moves != nil {
		t.Errorf("Scramble on 1x1 = %v, want nil", moves)
	}
}

func TestCloneIndependent(t *testing.T) {
	c := NewCube(3)
	clone := c.Clone()
	if err := clone.Parse("R", nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !c.IsSolved() {
		t.Error("mutating a clone changed the original")
	}
	if c.Equal(clone) {
		t.Error("clone should differ after a turn")
	}
}
