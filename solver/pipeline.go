// Package solver implements layered solving pipelines for cubes of any
// size: a beginner-method 3x3 pipeline, a corner-only 2x2 pipeline, and the
// reduction phases (centers, edges, parity) that turn a big cube into a 3x3
// problem.
package solver

import (
	"fmt"
	"io"

	"github.com/cubetools/gocubing"
)

// Stage is one step of a solving pipeline. Each stage assumes the cube
// state its predecessors leave behind; running stages out of order gives
// undefined results.
type Stage struct {
	Name        string
	Description string
	Run         func(*gocubing.Cube3x3) ([]string, error)
}

// StageResult captures what one stage did, for display layers.
type StageResult struct {
	Name        string
	Description string
	Moves       []string
	State       string
}

// Pipeline runs stages in order, concatenating and compressing their moves.
type Pipeline struct {
	stages []Stage
	debug  io.Writer
}

func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// SetDebug makes the pipeline write each stage's name and resulting state.
func (p *Pipeline) SetDebug(w io.Writer) { p.debug = w }

// Stages returns the pipeline's stage list.
func (p *Pipeline) Stages() []Stage { return p.stages }

// Run applies every stage to the cube and returns the compressed move list.
// On a stage error the moves applied so far are still returned; the cube
// keeps the state the failing stage left it in.
func (p *Pipeline) Run(cube *gocubing.Cube3x3) ([]string, error) {
	results, err := p.RunStages(cube)
	var moves []string
	for _, r := range results {
		moves = append(moves, r.Moves...)
	}
	return gocubing.Compress(moves), err
}

// RunStages is Run with per-stage capture. The returned results always
// cover every stage that executed, including a failing one.
func (p *Pipeline) RunStages(cube *gocubing.Cube3x3) ([]StageResult, error) {
	var results []StageResult
	for _, stage := range p.stages {
		moves, err := stage.Run(cube)
		results = append(results, StageResult{
			Name:        stage.Name,
			Description: stage.Description,
			Moves:       gocubing.Compress(moves),
			State:       cube.String(),
		})
		if err != nil {
			return results, fmt.Errorf("%s: %w", stage.Name, err)
		}
		if p.debug != nil {
			fmt.Fprintf(p.debug, "%s: %s\n", stage.Name, cube.String())
		}
	}
	return results, nil
}

// Stages apply only turns that are legal by construction, so a turn error
// inside one is a programming fault rather than a solvable condition.
func apply(c *gocubing.Cube, moves string, out *[]string) {
	if err := c.Parse(moves, out); err != nil {
		panic(fmt.Sprintf("solver: bad internal move sequence %q: %v", moves, err))
	}
}

func turn(c *gocubing.Cube, f gocubing.Face, dist, layer, width int, out *[]string) {
	if err := c.Turn(f, dist, layer, width, out); err != nil {
		panic(fmt.Sprintf("solver: bad internal turn %v %d %d %d: %v", f, dist, layer, width, err))
	}
}

func edgeBetween(c *gocubing.Cube3x3, a, b gocubing.Face) gocubing.Piece {
	p, err := c.GetEdgeBetween(a, b)
	if err != nil {
		panic(fmt.Sprintf("solver: bad edge lookup %v %v: %v", a, b, err))
	}
	return p
}

func cornerBetween(c *gocubing.Cube3x3, a, b, d gocubing.Face) gocubing.Piece {
	p, err := c.GetCornerBetween(a, b, d)
	if err != nil {
		panic(fmt.Sprintf("solver: bad corner lookup %v %v %v: %v", a, b, d, err))
	}
	return p
}
