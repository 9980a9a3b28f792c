package gridpath

import (
	"errors"

	"github.com/elidom/gridham/grid"
)

// Sentinel errors for Path construction and extension.
var (
	// ErrTooShort indicates fewer than one vertex was supplied, or the
	// vertex count does not equal N*M.
	ErrTooShort = errors.New("gridpath: vertex count must equal grid.N * grid.M")
	// ErrNotAdjacent indicates two consecutive vertices are not grid-adjacent.
	ErrNotAdjacent = errors.New("gridpath: consecutive vertices must be grid-adjacent")
	// ErrDuplicateVertex indicates the same coordinate appears twice.
	ErrDuplicateVertex = errors.New("gridpath: vertex repeated")
	// ErrOutOfBounds indicates a vertex lies outside the grid.
	ErrOutOfBounds = errors.New("gridpath: vertex out of grid bounds")
	// ErrNoBoundaryEdge indicates Extend found no edge along the requested
	// boundary to splice a detour into.
	ErrNoBoundaryEdge = errors.New("gridpath: no edge along requested boundary")
)

// Path is a Hamiltonian path over a grid.Grid: a sequence of vertices,
// each consecutive pair grid-adjacent, visiting every cell exactly once.
type Path struct {
	g        grid.Grid
	vertices []grid.Coordinate
}

// Grid returns the grid the path spans.
func (p Path) Grid() grid.Grid {
	return p.g
}

// Vertices returns a copy of the path's vertex sequence, in order from
// start to end.
func (p Path) Vertices() []grid.Coordinate {
	out := make([]grid.Coordinate, len(p.vertices))
	copy(out, p.vertices)

	return out
}

// Start returns the first vertex of the path.
func (p Path) Start() grid.Coordinate {
	return p.vertices[0]
}

// End returns the last vertex of the path.
func (p Path) End() grid.Coordinate {
	return p.vertices[len(p.vertices)-1]
}

// Len returns the number of vertices in the path.
func (p Path) Len() int {
	return len(p.vertices)
}

// adjacent reports whether a and b differ by exactly 1 in one coordinate
// and are equal in the other (4-connectivity).
func adjacent(a, b grid.Coordinate) bool {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	return dx+dy == 1
}
