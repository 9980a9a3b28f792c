package problem

import (
	"github.com/elidom/gridham/grid"
	"github.com/elidom/gridham/gridpath"
	"github.com/elidom/gridham/primetable"
)

// Solve runs the full Itai-Papadimitriou-Szwarcfiter construction: strip to
// a fixed point, resolve the reduced instance via the trivial line case,
// the prime table, or a recursive horizontal/vertical split, then replay
// the recorded strips as Path extensions to regrow the solution to the
// problem's original dimensions.
//
// Solve returns (path, false, nil) when the problem is not Acceptable —
// that is the one expected, non-error negative outcome. Any error return
// indicates an invariant violation: a prime-table gap or a theorem-table
// bug, not a problem with the input.
//
// Complexity: O(n * m) per split scan, over a recursion whose depth is
// bounded by the number of times n*m can be halved or reduced by a strip.
func (p Problem) Solve() (gridpath.Path, bool, error) {
	ok, err := p.Acceptable()
	if err != nil {
		return gridpath.Path{}, false, err
	}
	if !ok {
		return gridpath.Path{}, false, nil
	}

	reduced, err := p.StripToFixedPoint()
	if err != nil {
		return gridpath.Path{}, false, err
	}

	solution, err := reduced.solveReduced()
	if err != nil {
		return gridpath.Path{}, false, err
	}

	// Undo the strips last-first: each Extend restores the grid that the
	// matching strip was taken from.
	undo := make([]grid.Direction, len(reduced.extensions))
	for i, d := range reduced.extensions {
		undo[len(undo)-1-i] = d
	}

	final, err := solution.ExtendMany(undo)
	if err != nil {
		return gridpath.Path{}, false, err
	}

	return final, true, nil
}

// solveReduced resolves an already-stripped-to-fixed-point Problem via the
// trivial line case, a prime-table hit, or a recursive split. It assumes
// the receiver is Acceptable.
func (p Problem) solveReduced() (gridpath.Path, error) {
	switch {
	case p.g.N == 1:
		return p.trivialLine(false)
	case p.g.M == 1:
		return p.trivialLine(true)
	}

	if primetable.IsPrime(p.g.N, p.g.M, p.start, p.end) {
		path, ok, err := primetable.GetPrime(p.g.N, p.g.M, p.start, p.end)
		if err != nil {
			return gridpath.Path{}, err
		}
		if !ok {
			return gridpath.Path{}, ErrUnsolvable
		}

		return path, nil
	}

	if lower, upper, startBelow, found, err := p.splitHorizontal(); err != nil {
		return gridpath.Path{}, err
	} else if found {
		return joinVertical(lower, upper, startBelow)
	}

	if left, right, startLeft, found, err := p.splitVertical(); err != nil {
		return gridpath.Path{}, err
	} else if found {
		return joinHorizontal(left, right, startLeft)
	}

	return gridpath.Path{}, ErrUnsolvable
}

// trivialLine builds the straight-line path for a degenerate 1xM or Nx1
// grid, oriented so the first vertex is p.start. horizontal selects
// whether the line runs along x (true) or y (false); Acceptable already
// guarantees {p.start, p.end} are the line's two extreme coordinates.
func (p Problem) trivialLine(horizontal bool) (gridpath.Path, error) {
	var verts []grid.Coordinate

	coord := func(v int) grid.Coordinate {
		if horizontal {
			return grid.Coordinate{X: v, Y: 0}
		}

		return grid.Coordinate{X: 0, Y: v}
	}
	get := func(c grid.Coordinate) int {
		if horizontal {
			return c.X
		}

		return c.Y
	}

	step := 1
	if get(p.start) > get(p.end) {
		step = -1
	}
	for v := get(p.start); ; v += step {
		verts = append(verts, coord(v))
		if v == get(p.end) {
			break
		}
	}

	return gridpath.New(p.g, verts)
}

// joinVertical concatenates a lower and upper sub-path, stacked along y,
// into a single path over a grid of the combined height. The split
// selection step already guaranteed the two paths are grid-adjacent across
// the seam; startBelow (as returned by splitHorizontal) says whether the
// lower block holds p.start (true) or p.end (false), which fixes the
// concatenation order so the joined path still starts at p.start and ends
// at p.end — the spatial lower/upper split does not itself determine that
// order.
func joinVertical(lower, upper Problem, startBelow bool) (gridpath.Path, error) {
	lowerPath, _, err := lower.Solve()
	if err != nil {
		return gridpath.Path{}, err
	}
	upperPath, _, err := upper.Solve()
	if err != nil {
		return gridpath.Path{}, err
	}

	shiftedUpper := make([]grid.Coordinate, len(upperPath.Vertices()))
	for i, v := range upperPath.Vertices() {
		shiftedUpper[i] = grid.Coordinate{X: v.X, Y: v.Y + lower.g.M}
	}

	var verts []grid.Coordinate
	if startBelow {
		verts = append(verts, lowerPath.Vertices()...)
		verts = append(verts, shiftedUpper...)
	} else {
		verts = append(verts, shiftedUpper...)
		verts = append(verts, lowerPath.Vertices()...)
	}

	g := grid.Grid{N: lower.g.N, M: lower.g.M + upper.g.M}

	return gridpath.New(g, verts)
}

// joinHorizontal concatenates a left and right sub-path, stacked along x,
// into a single path over a grid of the combined width. startLeft (as
// returned by splitVertical) says whether the left block holds p.start.
func joinHorizontal(left, right Problem, startLeft bool) (gridpath.Path, error) {
	leftPath, _, err := left.Solve()
	if err != nil {
		return gridpath.Path{}, err
	}
	rightPath, _, err := right.Solve()
	if err != nil {
		return gridpath.Path{}, err
	}

	shiftedRight := make([]grid.Coordinate, len(rightPath.Vertices()))
	for i, v := range rightPath.Vertices() {
		shiftedRight[i] = grid.Coordinate{X: v.X + left.g.N, Y: v.Y}
	}

	var verts []grid.Coordinate
	if startLeft {
		verts = append(verts, leftPath.Vertices()...)
		verts = append(verts, shiftedRight...)
	} else {
		verts = append(verts, shiftedRight...)
		verts = append(verts, leftPath.Vertices()...)
	}

	g := grid.Grid{N: left.g.N + right.g.N, M: left.g.M}

	return gridpath.New(g, verts)
}
