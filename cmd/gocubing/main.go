// gocubing - CLI for scrambling, rendering, and solving NxN Rubik's cubes.
package main

import (
	"github.com/cubetools/gocubing/internal/app/cli"
)

func main() {
	cli.Execute()
}
