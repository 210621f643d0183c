package gocubing

// ObservationBuffer accumulates repeated, possibly partial observations of a
// cube's faces and resolves each sticker by majority vote. Callers that read
// cube state from noisy sources (camera frames, sensor dumps) feed grids in
// with ColorUnknown marking unread cells, then build the final cube once
// every sticker has at least one vote.
type ObservationBuffer struct {
	n     int
	votes [6][][]cellVotes
}

type cellVotes struct {
	counts map[Color]int
	order  []Color // colors in first-seen order, breaks count ties
}

func (v *cellVotes) add(color Color) {
	if v.counts == nil {
		v.counts = make(map[Color]int)
	}
	if _, seen := v.counts[color]; !seen {
		v.order = append(v.order, color)
	}
	v.counts[color]++
}

func (v *cellVotes) winner() Color {
	best := ColorUnknown
	bestCount := 0
	for _, color := range v.order {
		if v.counts[color] > bestCount {
			best = color
			bestCount = v.counts[color]
		}
	}
	return best
}

// NewObservationBuffer returns an empty buffer for a cube of side n.
func NewObservationBuffer(n int) *ObservationBuffer {
	b := &ObservationBuffer{n: n}
	for _, f := range Faces {
		grid := make([][]cellVotes, n)
		for i := range grid {
			grid[i] = make([]cellVotes, n)
		}
		b.votes[f] = grid
	}
	return b
}

// Size returns the side length the buffer was created for.
func (b *ObservationBuffer) Size() int { return b.n }

// Observe records one partial reading of a face. The grid must be n rows of
// n cells; ColorUnknown cells are skipped rather than voted.
func (b *ObservationBuffer) Observe(f Face, grid [][]Color) error {
	if len(grid) != b.n {
		return ErrInvalidState
	}
	for _, row := range grid {
		if len(row) != b.n {
			return ErrInvalidState
		}
	}
	for i, row := range grid {
		for j, color := range row {
			if color == ColorUnknown {
				continue
			}
			if color > Yellow {
				return ErrInvalidState
			}
			b.votes[f][i][j].add(color)
		}
	}
	return nil
}

// BestGuess returns the current majority color per cell of a face, with
// ColorUnknown where no observation has landed yet.
func (b *ObservationBuffer) BestGuess(f Face) [][]Color {
	out := make([][]Color, b.n)
	for i := range out {
		out[i] = make([]Color, b.n)
		for j := range out[i] {
			out[i][j] = b.votes[f][i][j].winner()
		}
	}
	return out
}

// Complete reports whether every sticker of every face has at least one
// vote.
func (b *ObservationBuffer) Complete() bool {
	for _, f := range Faces {
		for _, row := range b.votes[f] {
			for _, cell := range row {
				if len(cell.counts) == 0 {
					return false
				}
			}
		}
	}
	return true
}

// Cube builds the voted cube. It fails with ErrInvalidState while any
// sticker remains unobserved.
func (b *ObservationBuffer) Cube() (*Cube, error) {
	if !b.Complete() {
		return nil, ErrInvalidState
	}
	c := &Cube{n: b.n}
	for _, f := range Faces {
		c.faces[f] = b.BestGuess(f)
	}
	return c, nil
}

// Reset clears all accumulated votes.
func (b *ObservationBuffer) Reset() {
	for _, f := range Faces {
		for i := range b.votes[f] {
			for j := range b.votes[f][i] {
				b.votes[f][i][j] = cellVotes{}
			}
		}
	}
}
