package gocubing

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		token string
		n     int
		want  Move
	}{
		{"R", 3, Move{Right, 1, 1, 1}},
		{"R'", 3, Move{Right, -1, 1, 1}},
		{"R2", 3, Move{Right, 2, 1, 1}},
		{"F", 3, Move{Front, 1, 1, 1}},
		{"U'", 3, Move{Top, -1, 1, 1}},
		{"2F", 4, Move{Front, 1, 2, 1}},
		{"3L2", 5, Move{Left, 2, 3, 1}},
		{"Rw", 4, Move{Right, 1, 2, 2}},
		{"3Rw'", 5, Move{Right, -1, 3, 3}},
		{"r", 4, Move{Right, 1, 2, 2}},
		{"2r", 5, Move{Right, 1, 2, 2}},
		{"3l'", 7, Move{Left, -1, 3, 3}},
		{"d2", 4, Move{Bottom, 2, 2, 2}},
		{"x", 4, Move{Right, 1, 4, 4}},
		{"y'", 3, Move{Top, -1, 3, 3}},
		{"z2", 5, Move{Front, 2, 5, 5}},
	}

	for _, tt := range tests {
		got, err := ParseToken(tt.token, tt.n)
		if err != nil {
			t.Errorf("ParseToken(%q, %d) error: %v", tt.token, tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseToken(%q, %d) = %+v, want %+v", tt.token, tt.n, got, tt.want)
		}
	}
}

func TestParseTokenInvalid(t *testing.T) {
	for _, token := range []string{"", "Q", "R3", "R''", "2x", "xw", "3", "Rx"} {
		if _, err := ParseToken(token, 4); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseToken(%q) error = %v, want ErrInvalidNotation", token, err)
		}
	}
}

func TestGetMove(t *testing.T) {
	tests := []struct {
		face                  Face
		dist, layer, width, n int
		want                  []string
	}{
		{Right, 0, 1, 1, 3, nil},
		{Right, 4, 1, 1, 3, nil},
		{Right, 1, 1, 1, 3, []string{"R"}},
		{Right, -1, 1, 1, 3, []string{"R'"}},
		{Front, 2, 2, 1, 4, []string{"2F2"}},
		{Right, 1, 3, 3, 5, []string{"3Rw"}},
		{Right, 1, 3, 2, 5, []string{"3Rw", "R'"}},
		{Right, 2, 4, 2, 5, []string{"4Rw2", "2Rw2"}},
		{Right, 1, 3, 3, 3, []string{"x"}},
		{Top, 2, 4, 4, 4, []string{"y2"}},
		{Left, 1, 3, 3, 3, []string{"x'"}},
		{Bottom, 2, 3, 3, 3, []string{"y2"}},
	}

	for _, tt := range tests {
		got, err := GetMove(tt.face, tt.dist, tt.layer, tt.width, tt.n)
		if err != nil {
			t.Errorf("GetMove(%v,%d,%d,%d,%d) error: %v", tt.face, tt.dist, tt.layer, tt.width, tt.n, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("GetMove(%v,%d,%d,%d,%d) = %v, want %v", tt.face, tt.dist, tt.layer, tt.width, tt.n, got, tt.want)
		}
	}
}

func TestGetMoveTooWide(t *testing.T) {
	if _, err := GetMove(Right, 1, 1, 2, 3); !errors.Is(err, ErrInvalidTurn) {
		t.Errorf("GetMove width > layer error = %v, want ErrInvalidTurn", err)
	}
}

func TestCompress(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{nil, nil},
		{[]string{"R"}, []string{"R"}},
		{[]string{"R", "R", "R"}, []string{"R'"}},
		{[]string{"Rw", "Rw"}, []string{"Rw2"}},
		{[]string{"3F", "3F", "3F", "3F"}, nil},
		{[]string{"R", "R'"}, nil},
		{[]string{"R", "R'", "U"}, []string{"U"}},
		{[]string{"U", "R", "R2", "U'"}, []string{"U", "R'", "U'"}},
		{[]string{"F2", "F2", "L"}, []string{"L"}},
		{[]string{"U", "R", "R'", "U'"}, nil},
		{[]string{"U", "F", "F", "F", "F", "U'"}, nil},
		{[]string{"R", "U", "U'", "R'", "F"}, []string{"F"}},
	}

	for _, tt := range tests {
		got := Compress(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Compress(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if again := Compress(got); !reflect.DeepEqual(again, got) {
			t.Errorf("Compress(%v) = %v, not a fixpoint", got, again)
		}
	}
}

func TestReverse(t *testing.T) {
	got := Reverse([]string{"R", "U'", "F2"})
	want := []string{"F2", "U", "R'"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reverse = %v, want %v", got, want)
	}
}

func TestSexyMoveTimes(t *testing.T) {
	tests := []struct {
		n        int
		leftHand bool
		want     string
	}{
		{0, false, "  "},
		{6, false, "  "},
		{1, false, " R U R' U' "},
		{2, false, " R U R' U' R U R' U' "},
		{1, true, " L' U' L U "},
		{4, false, " U R U' R' U R U' R' "},
		{5, true, " U' L' U L "},
		{7, false, " R U R' U' "},
		{-1, false, " U R U' R' "},
	}

	for _, tt := range tests {
		if got := SexyMoveTimes(tt.n, tt.leftHand); got != tt.want {
			t.Errorf("SexyMoveTimes(%d, %v) = %q, want %q", tt.n, tt.leftHand, got, tt.want)
		}
	}
}

func TestConvert3x3MovesToNxN(t *testing.T) {
	got, err := Convert3x3MovesToNxN([]string{"R", "Fw", "2F", "x"}, 5)
	if err != nil {
		t.Fatalf("Convert3x3MovesToNxN error: %v", err)
	}
	want := []string{"R", "4Fw", "4Fw", "F'", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Convert3x3MovesToNxN = %v, want %v", got, want)
	}
}

func TestConvert3x3MovesTo2x2(t *testing.T) {
	// The middle slice move 2F has no stickers to act on.
	got, err := Convert3x3MovesTo2x2([]string{"R", "2F", "Fw", "x"})
	if err != nil {
		t.Fatalf("Convert3x3MovesTo2x2 error: %v", err)
	}
	want := []string{"R", "F", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Convert3x3MovesTo2x2 = %v, want %v", got, want)
	}
}
