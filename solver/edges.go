package solver

import (
	"fmt"

	"github.com/cubetools/gocubing"
)

// Big-cube edge pairing. Wings are collected one logical edge at a time in
// the front-right column using a slice, flip, unslice primitive that keeps
// centers and every other edge intact. Wings live in fixed height orbits
// {h, n-1-h}; a wing and its mirror partner are chiral, so each seat of an
// orbit accepts exactly one of the two wings that carry the edge's colors.

// stickerRun addresses one border run of an edge slot: a row or column of a
// face, at index 0 or n-1, covering the interior cells 1..n-2.
type stickerRun struct {
	face gocubing.Face
	row  bool
	last bool
}

type edgeSlotDef struct {
	name string
	a, b stickerRun
}

var edgeSlotDefs = []edgeSlotDef{
	{"UF", stickerRun{gocubing.Top, true, true}, stickerRun{gocubing.Front, true, false}},
	{"UL", stickerRun{gocubing.Top, false, false}, stickerRun{gocubing.Left, true, false}},
	{"UB", stickerRun{gocubing.Top, true, false}, stickerRun{gocubing.Back, true, false}},
	{"UR", stickerRun{gocubing.Top, false, true}, stickerRun{gocubing.Right, true, false}},
	{"DF", stickerRun{gocubing.Bottom, true, true}, stickerRun{gocubing.Front, true, true}},
	{"DL", stickerRun{gocubing.Bottom, false, false}, stickerRun{gocubing.Left, true, true}},
	{"DB", stickerRun{gocubing.Bottom, true, false}, stickerRun{gocubing.Back, true, true}},
	{"DR", stickerRun{gocubing.Bottom, false, true}, stickerRun{gocubing.Right, true, true}},
	{"FR", stickerRun{gocubing.Front, false, true}, stickerRun{gocubing.Right, false, false}},
	{"FL", stickerRun{gocubing.Front, false, false}, stickerRun{gocubing.Left, false, true}},
	{"BL", stickerRun{gocubing.Back, false, true}, stickerRun{gocubing.Left, false, false}},
	{"BR", stickerRun{gocubing.Back, false, false}, stickerRun{gocubing.Right, false, true}},
}

const frSlot = 8

func runCell(n int, r stickerRun, h int) (int, int) {
	idx := 0
	if r.last {
		idx = n - 1
	}
	if r.row {
		return idx, h
	}
	return h, idx
}

func runUniform(c *gocubing.Cube, r stickerRun) bool {
	n := c.Size()
	i0, j0 := runCell(n, r, 1)
	first := c.At(r.face, i0, j0)
	for h := 2; h < n-1; h++ {
		i, j := runCell(n, r, h)
		if c.At(r.face, i, j) != first {
			return false
		}
	}
	return true
}

func slotComplete(c *gocubing.Cube, slot int) bool {
	def := edgeSlotDefs[slot]
	return runUniform(c, def.a) && runUniform(c, def.b)
}

func countIncompleteSlots(c *gocubing.Cube) int {
	count := 0
	for slot := range edgeSlotDefs {
		if !slotComplete(c, slot) {
			count++
		}
	}
	return count
}

func frWing(c *gocubing.Cube, h int) (front, right gocubing.Color) {
	n := c.Size()
	return c.At(gocubing.Front, h, n-1), c.At(gocubing.Right, h, 0)
}

func flWing(c *gocubing.Cube, h int) (front, left gocubing.Color) {
	n := c.Size()
	return c.At(gocubing.Front, h, 0), c.At(gocubing.Left, h, n-1)
}

func urWing(c *gocubing.Cube, h int) (top, right gocubing.Color) {
	n := c.Size()
	return c.At(gocubing.Top, h, n-1), c.At(gocubing.Right, 0, n-1-h)
}

// frFlipper reverses the front-right and top-right edge columns in place:
// within each column the wings at heights h and n-1-h trade seats and trade
// sticker roles. Every face it turns comes back to a net zero rotation, so
// centers survive; corners are freely disturbed.
const frFlipper = "R U R' F R' F' R U'"

// pairInsert is the pairing primitive at height h: slice the front-left
// wing into the front-right column, flip that column, slice back. The wing
// staged at front-left height h lands at front-right height n-1-h keeping
// its shown colors, the wing it replaces is ejected to front-left height h,
// and height h of the front-right column is left untouched. Every other
// height of the front-right column is mirrored, as is the whole top-right
// column, so orbit work comes in matched pairs of insertions whenever a
// reference orientation must survive.
func pairInsert(c *gocubing.Cube, h int, out *[]string) {
	turn(c, gocubing.Top, -1, h+1, 1, out)
	apply(c, frFlipper, out)
	turn(c, gocubing.Top, 1, h+1, 1, out)
}

// stagingMoves never touch the front-right column, so they are safe while
// an edge is being assembled there.
var stagingMoves = []string{
	"U", "U'", "U2", "D", "D'", "D2",
	"L", "L'", "L2", "B", "B'", "B2",
}

var allFaceMoves = []string{
	"U", "U'", "U2", "D", "D'", "D2",
	"L", "L'", "L2", "B", "B'", "B2",
	"F", "F'", "F2", "R", "R'", "R2",
}

// searchMoves finds the shortest generator sequence, up to maxDepth, that
// makes goal true, trying candidates on clones.
func searchMoves(c *gocubing.Cube, gens []string, maxDepth int, goal func(*gocubing.Cube) bool) ([]string, bool) {
	if goal(c) {
		return nil, true
	}
	for depth := 1; depth <= maxDepth; depth++ {
		if seq, ok := deepenSearch(c, gens, depth, "", goal); ok {
			return seq, true
		}
	}
	return nil, false
}

func deepenSearch(c *gocubing.Cube, gens []string, depth int, prevRoot string, goal func(*gocubing.Cube) bool) ([]string, bool) {
	for _, g := range gens {
		root := gocubing.RootOf(g)
		if root == prevRoot {
			continue
		}
		cc := c.Clone()
		apply(cc, g, nil)
		if depth == 1 {
			if goal(cc) {
				return []string{g}, true
			}
			continue
		}
		if seq, ok := deepenSearch(cc, gens, depth-1, root, goal); ok {
			return append([]string{g}, seq...), true
		}
	}
	return nil, false
}

func pairingStuck(what string) error {
	return fmt.Errorf("edge pairing %s: %w", what, gocubing.ErrImpossibleScramble)
}

// stageWing reroutes the neighborhood until goal holds, then commits the
// found moves. Routing a wing onto a front-left seat can need an in-place
// height mirror, which costs five moves, so the search runs one deeper.
func stageWing(c *gocubing.Cube, what string, goal func(*gocubing.Cube) bool, out *[]string) error {
	seq, ok := searchMoves(c, stagingMoves, 6, goal)
	if !ok {
		return pairingStuck(what)
	}
	for _, g := range seq {
		apply(c, g, out)
	}
	return nil
}

// shownAtFL is the staging goal for a real insertion: the wing at
// front-left height h shows front a, left b, so the next pairInsert at h
// lands it at front-right height n-1-h as front a, right b.
func shownAtFL(h int, a, b gocubing.Color) func(*gocubing.Cube) bool {
	return func(cc *gocubing.Cube) bool {
		f, l := flWing(cc, h)
		return f == a && l == b
	}
}

// junkAtFL is the staging goal for an eviction: whatever sits at front-left
// height h must not carry the edge's colors, so the junk swap cannot
// swallow a wing the edge still needs.
func junkAtFL(h int, a, b gocubing.Color) func(*gocubing.Cube) bool {
	return func(cc *gocubing.Cube) bool {
		f, l := flWing(cc, h)
		return !((f == a && l == b) || (f == b && l == a))
	}
}

// buildOrbit fills front-right heights h1 and n-1-h1 with the edge's two
// wings, oriented front a, right b. Outside the relaxed first orbit of an
// even cube the orbit is always changed by an even number of insertions, so
// the mirroring side effect on the reference and on finished orbits
// cancels before the next orbit reads them.
func buildOrbit(c *gocubing.Cube, a, b gocubing.Color, h1 int, relaxed bool, out *[]string) error {
	n := c.Size()
	h2 := n - 1 - h1
	good := func(h int) bool {
		f, r := frWing(c, h)
		return f == a && r == b
	}
	carries := func(h int) bool {
		f, r := frWing(c, h)
		return (f == a && r == b) || (f == b && r == a)
	}

	if good(h1) && good(h2) {
		return nil
	}

	if relaxed {
		// The wing at h1 is the orientation reference, so only the mirror
		// height needs its partner. The partner cannot sit at h2 wrongly
		// oriented: chirality would force it to show a,b there.
		if err := stageWing(c, "partner unreachable", shownAtFL(h1, a, b), out); err != nil {
			return err
		}
		pairInsert(c, h1, out)
	} else {
		if carries(h1) || carries(h2) {
			// Wings trapped at the wrong seats: a matched pair of junk
			// insertions ejects them before the rebuild.
			if err := stageWing(c, "staging seat blocked", junkAtFL(h1, a, b), out); err != nil {
				return err
			}
			pairInsert(c, h1, out)
			if err := stageWing(c, "staging seat blocked", junkAtFL(h2, a, b), out); err != nil {
				return err
			}
			pairInsert(c, h2, out)
		}

		if err := stageWing(c, "candidate unreachable", shownAtFL(h1, a, b), out); err != nil {
			return err
		}
		pairInsert(c, h1, out)
		if err := stageWing(c, "candidate unreachable", shownAtFL(h2, a, b), out); err != nil {
			return err
		}
		pairInsert(c, h2, out)
	}

	if !good(h1) || !good(h2) {
		return pairingStuck("orbit did not assemble")
	}
	return nil
}

// buildEdgeAtFR assembles one full logical edge in the front-right column.
// The target edge is whichever one owns the reference wing already sitting
// there; on odd cubes the fixed middle wing is the reference, on even cubes
// the first assembled orbit becomes it. The reference is reread before
// every orbit because insertions mirror it in lockstep with finished
// orbits.
func buildEdgeAtFR(c *gocubing.Cube, out *[]string) error {
	n := c.Size()
	ref := -1
	if n%2 == 1 {
		ref = (n - 1) / 2
	}

	for h1 := 1; h1 < n-1-h1; h1++ {
		relaxed := ref < 0
		var a, b gocubing.Color
		if relaxed {
			a, b = frWing(c, h1)
		} else {
			a, b = frWing(c, ref)
		}
		if err := buildOrbit(c, a, b, h1, relaxed, out); err != nil {
			return err
		}
		if ref < 0 {
			ref = h1
		}
	}

	if !slotComplete(c, frSlot) {
		return pairingStuck("front-right edge incomplete")
	}
	return nil
}

func ensureIncompleteAtFR(c *gocubing.Cube, out *[]string) error {
	if !slotComplete(c, frSlot) {
		return nil
	}
	seq, ok := searchMoves(c, allFaceMoves, 3, func(cc *gocubing.Cube) bool {
		return !slotComplete(cc, frSlot)
	})
	if !ok {
		return pairingStuck("no incomplete edge reachable")
	}
	for _, g := range seq {
		apply(c, g, out)
	}
	return nil
}

func centersUniform(c *gocubing.Cube) bool {
	n := c.Size()
	for _, f := range gocubing.Faces {
		first := c.At(f, 1, 1)
		for i := 1; i < n-1; i++ {
			for j := 1; j < n-1; j++ {
				if c.At(f, i, j) != first {
					return false
				}
			}
		}
	}
	return true
}

// swapFrontEdges exchanges the complete front-right and front-left edges
// with a matched pair of insertions per orbit. On the reduced cube that is
// a single edge transposition, which toggles edge permutation parity while
// every center and edge block survives; corners are freely disturbed.
func swapFrontEdges(c *gocubing.Cube, out *[]string) {
	n := c.Size()
	for h := 1; h < n-1-h; h++ {
		pairInsert(c, h, out)
		pairInsert(c, n-1-h, out)
	}
}

// flMirror reverses the front-left edge column in place: conjugating the
// top-left column mirror U B L by an L turn carries front-left through the
// top layer and back with its heights and sticker roles swapped.
const flMirror = "L' U B L2"

// flipFrontEdge reverses the complete front-right edge as a unit: park it
// at front-left, mirror that column, bring it back. On the reduced cube
// exactly one edge block is flipped in place, which toggles edge
// orientation parity without breaking the reduction.
func flipFrontEdge(c *gocubing.Cube, out *[]string) {
	swapFrontEdges(c, out)
	apply(c, flMirror, out)
	swapFrontEdges(c, out)
}

// SolveEdges pairs every wing of a big cube into complete edges, leaving
// centers intact, so the cube reduces to a 3x3. Corners are freely
// disturbed; the 3x3 phase restores them. The final edge needs no special
// handling: wings sitting at each other's seats within an orbit are
// ejected and reinserted like any other trapped pair.
func SolveEdges(c *gocubing.Cube) ([]string, error) {
	n := c.Size()
	if n <= 3 {
		return nil, nil
	}

	var moves []string
	for guard := 0; ; guard++ {
		if guard > 16 {
			return moves, pairingStuck("did not converge")
		}
		if countIncompleteSlots(c) == 0 {
			return moves, nil
		}
		if err := ensureIncompleteAtFR(c, &moves); err != nil {
			return moves, err
		}
		if err := buildEdgeAtFR(c, &moves); err != nil {
			return moves, err
		}
	}
}
