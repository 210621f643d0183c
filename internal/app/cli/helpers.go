package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cubetools/gocubing"
)

// cubeFromArg builds a cube from a flat state string argument. "-" reads the
// state from stdin.
func cubeFromArg(arg string) (*gocubing.Cube, error) {
	state := arg
	if arg == "-" {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("failed to read state from stdin: %w", err)
		}
		state = strings.TrimSpace(line)
	}
	return gocubing.FromString(state)
}

// cubeFromScramble builds a solved cube of the given size and applies a
// scramble sequence to it.
func cubeFromScramble(size int, scramble string) (*gocubing.Cube, error) {
	if size < 1 {
		return nil, fmt.Errorf("invalid cube size %d: %w", size, gocubing.ErrInvalidState)
	}
	cube := gocubing.NewCube(size)
	if scramble != "" {
		if err := cube.Parse(scramble, nil); err != nil {
			return nil, err
		}
	}
	return cube, nil
}
