package gocubing

import (
	"errors"
	"testing"
)

func gridOf(n int, c Color) [][]Color {
	grid := make([][]Color, n)
	for i := range grid {
		grid[i] = make([]Color, n)
		for j := range grid[i] {
			grid[i][j] = c
		}
	}
	return grid
}

func TestObservationBufferVoting(t *testing.T) {
	b := NewObservationBuffer(2)

	// Two clean readings outvote one misread.
	noisy := gridOf(2, Green)
	noisy[0][0] = Red
	if err := b.Observe(Front, noisy); err != nil {
		t.Fatalf("Observe: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := b.Observe(Front, gridOf(2, Green)); err != nil {
			t.Fatalf("Observe: %v", err)
		}
	}

	guess := b.BestGuess(Front)
	if guess[0][0] != Green {
		t.Errorf("BestGuess[0][0] = %v, want Green", guess[0][0])
	}
}

func TestObservationBufferTieBreak(t *testing.T) {
	b := NewObservationBuffer(1)

	// On a tie the first observed color wins.
	b.Observe(Front, [][]Color{{Blue}})
	b.Observe(Front, [][]Color{{Red}})

	if got := b.BestGuess(Front)[0][0]; got != Blue {
		t.Errorf("tie break = %v, want Blue", got)
	}
}

func TestObservationBufferUnknownSkipped(t *testing.T) {
	b := NewObservationBuffer(2)

	partial := gridOf(2, Yellow)
	partial[1][1] = ColorUnknown
	if err := b.Observe(Top, partial); err != nil {
		t.Fatalf("Observe: %v", err)
	}

	guess := b.BestGuess(Top)
	if guess[0][0] != Yellow {
		t.Errorf("observed cell = %v, want Yellow", guess[0][0])
	}
	if guess[1][1] != ColorUnknown {
		t.Errorf("unobserved cell = %v, want ColorUnknown", guess[1][1])
	}
}

func TestObservationBufferBadInput(t *testing.T) {
	b := NewObservationBuffer(3)

	if err := b.Observe(Front, gridOf(2, Green)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("wrong rows error = %v, want ErrInvalidState", err)
	}

	ragged := gridOf(3, Green)
	ragged[1] = ragged[1][:2]
	if err := b.Observe(Front, ragged); !errors.Is(err, ErrInvalidState) {
		t.Errorf("ragged grid error = %v, want ErrInvalidState", err)
	}

	bad := gridOf(3, Green)
	bad[0][0] = Color(17)
	if err := b.Observe(Front, bad); !errors.Is(err, ErrInvalidState) {
		t.Errorf("bad color error = %v, want ErrInvalidState", err)
	}
}

func TestObservationBufferCube(t *testing.T) {
	b := NewObservationBuffer(2)

	if _, err := b.Cube(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Cube on empty buffer error = %v, want ErrInvalidState", err)
	}
	if b.Complete() {
		t.Fatal("empty buffer reports complete")
	}

	for _, f := range Faces {
		if err := b.Observe(f, gridOf(2, solvedColor(f))); err != nil {
			t.Fatalf("Observe: %v", err)
		}
	}
	if !b.Complete() {
		t.Fatal("fully observed buffer not complete")
	}

	cube, err := b.Cube()
	if err != nil {
		t.Fatalf("Cube: %v", err)
	}
	if !cube.IsSolved() {
		t.Error("voted cube not solved")
	}

	b.Reset()
	if b.Complete() {
		t.Error("buffer still complete after Reset")
	}
}
