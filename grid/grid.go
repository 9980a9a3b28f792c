package grid

// NewGrid constructs a Grid of the given width and height. Both must be
// at least 1.
//
// Complexity: O(1).
func NewGrid(n, m int) (Grid, error) {
	if n < 1 || m < 1 {
		return Grid{}, ErrInvalidDimensions
	}

	return Grid{N: n, M: m}, nil
}

// InBounds reports whether c lies within [0,N) x [0,M).
//
// Complexity: O(1).
func (g Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.N && c.Y >= 0 && c.Y < g.M
}

// checkBounds validates both coordinates and returns ErrOutOfBounds if
// either falls outside the grid.
func (g Grid) checkBounds(v, w Coordinate) error {
	if !g.InBounds(v) || !g.InBounds(w) {
		return ErrOutOfBounds
	}

	return nil
}

// ColorCompatible reports whether v and w may serve as the endpoints of a
// Hamiltonian path over g, based on the bipartition parity of the grid.
//
// If N = n*m is odd, only the majority (even-parity) color class admits a
// Hamiltonian path, so both v and w must have even parity. If N is even,
// the two color classes are equal in size and the endpoints must have
// opposite parity.
//
// Complexity: O(1).
func (g Grid) ColorCompatible(v, w Coordinate) (bool, error) {
	if err := g.checkBounds(v, w); err != nil {
		return false, err
	}

	if (g.N*g.M)&1 == 1 {
		return v.Parity() == 0 && w.Parity() == 0, nil
	}

	return v.Parity() != w.Parity(), nil
}

// Corner reports whether v is one of the four extreme-coordinate vertices
// of g.
//
// Complexity: O(1).
func (g Grid) Corner(v Coordinate) (bool, error) {
	if !g.InBounds(v) {
		return false, ErrOutOfBounds
	}

	return g.isCorner(v), nil
}

// isCorner is the bounds-checked-already core of Corner, reused by
// Forbidden's case-2 dispatch.
func (g Grid) isCorner(v Coordinate) bool {
	return (v.X == 0 || v.X == g.N-1) && (v.Y == 0 || v.Y == g.M-1)
}

// Forbidden encodes the Itai-Papadimitriou-Szwarcfiter obstruction cases:
// geometric configurations of (v, w) for which no Hamiltonian s-t path can
// exist over g, regardless of color compatibility. The "thin dimension" is
// whichever of N or M is <= 3; when both qualify, the smaller one is used,
// and N when the two are equal.
//
// Complexity: O(1).
func (g Grid) Forbidden(v, w Coordinate) (bool, error) {
	if err := g.checkBounds(v, w); err != nil {
		return false, err
	}

	switch {
	case g.N == 1 || g.M == 1:
		return g.forbiddenThin1(v, w), nil
	case g.N == 2 || g.M == 2:
		return g.forbiddenThin2(v, w), nil
	case g.N == 3 || g.M == 3:
		return g.forbiddenThin3(v, w), nil
	default:
		return false, nil
	}
}

// forbiddenThin1 handles the degenerate line case (N == 1 or M == 1):
// forbidden unless {v, w} is exactly the pair of extreme endpoints.
func (g Grid) forbiddenThin1(v, w Coordinate) bool {
	isN := g.N == 1
	bound := g.M
	if !isN {
		bound = g.N
	}

	var a, b Coordinate
	if isN {
		a, b = Coordinate{0, 0}, Coordinate{0, bound - 1}
	} else {
		a, b = Coordinate{0, 0}, Coordinate{bound - 1, 0}
	}

	matches := (v == a && w == b) || (v == b && w == a)

	return !matches
}

// forbiddenThin2 handles the two-wide strip case: forbidden iff neither
// endpoint is a corner and the two share the coordinate along the thick
// (non-thin) dimension, i.e. there is no non-boundary edge between them.
func (g Grid) forbiddenThin2(v, w Coordinate) bool {
	if g.isCorner(v) || g.isCorner(w) {
		return false
	}

	isN := g.N == 2
	if isN {
		return v.Y == w.Y
	}

	return v.X == w.X
}

// forbiddenThin3 handles the three-wide strip case per the theorem's
// parity/distance obstruction.
func (g Grid) forbiddenThin3(v, w Coordinate) bool {
	isN := g.N == 3
	thick := g.M
	if !isN {
		thick = g.N
	}

	if thick&1 == 1 {
		return false
	}
	if v.Parity() == w.Parity() {
		return false
	}

	var a, b, u int
	if isN {
		a, b, u = v.Y, w.Y, v.X
	} else {
		a, b, u = v.X, w.X, v.Y
	}

	greater := a > b
	d := a - b
	if !greater {
		d = b - a
	}

	var distSatisfied bool
	if u == 1 {
		distSatisfied = d > 0
	} else {
		distSatisfied = d > 1
	}
	if !distSatisfied {
		return false
	}

	if greater && v.Parity() == 1 {
		return false
	}
	if !greater && v.Parity() == 0 {
		return false
	}

	return true
}
