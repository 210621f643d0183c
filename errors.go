package gocubing

import "errors"

// Sentinel errors for the gocubing package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("gocubing: invalid move notation")
	ErrInvalidState    = errors.New("gocubing: invalid cube state string")

	// Turn errors
	ErrInvalidTurn = errors.New("gocubing: invalid turn: too wide")

	// Piece query errors
	ErrIllegalEdge   = errors.New("gocubing: illegal edge combination")
	ErrIllegalCorner = errors.New("gocubing: illegal corner combination")

	// Reduction errors
	ErrNotSimplifiable = errors.New("gocubing: cube could not be simplified")

	// Solving errors. ErrParity is an expected, recoverable branch for the
	// NxN orchestrator; ErrImpossibleScramble is a hard stop.
	ErrParity             = errors.New("gocubing: parity detected")
	ErrImpossibleScramble = errors.New("gocubing: cube could not be solved")
)
