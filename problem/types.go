package problem

import (
	"errors"

	"github.com/elidom/gridham/grid"
)

// Sentinel errors for Problem construction and solving.
var (
	// ErrOutOfBounds indicates start or end lies outside the grid.
	ErrOutOfBounds = errors.New("problem: endpoint out of grid bounds")
	// ErrSameEndpoint indicates start and end were equal.
	ErrSameEndpoint = errors.New("problem: start and end must differ")
	// ErrUnsolvable indicates an Acceptable instance had no applicable
	// reduction; this signals a prime-table gap or a theorem-table bug.
	ErrUnsolvable = errors.New("problem: acceptable instance had no applicable reduction")
)

// Problem is a Hamiltonian-path instance: a grid plus two endpoints, along
// with the stack of boundary strips applied while reducing it. Problem is
// a value type — Strip and Split return new Problem values rather than
// mutating the receiver, so recursive solving needs no rollback.
type Problem struct {
	g          grid.Grid
	start, end grid.Coordinate
	extensions []grid.Direction
}

// New constructs a Problem over an n x m grid with the given start and end
// vertices.
//
// Complexity: O(1).
func New(n, m int, start, end grid.Coordinate) (Problem, error) {
	g, err := grid.NewGrid(n, m)
	if err != nil {
		return Problem{}, err
	}

	return FromGrid(g, start, end)
}

// FromGrid constructs a Problem over an existing grid.Grid.
//
// Complexity: O(1).
func FromGrid(g grid.Grid, start, end grid.Coordinate) (Problem, error) {
	if !g.InBounds(start) || !g.InBounds(end) {
		return Problem{}, ErrOutOfBounds
	}
	if start == end {
		return Problem{}, ErrSameEndpoint
	}

	return Problem{g: g, start: start, end: end}, nil
}

// Grid returns the problem's current grid.
func (p Problem) Grid() grid.Grid {
	return p.g
}

// Start returns the problem's current start vertex.
func (p Problem) Start() grid.Coordinate {
	return p.start
}

// End returns the problem's current end vertex.
func (p Problem) End() grid.Coordinate {
	return p.end
}

// Extensions returns a copy of the recorded strip directions, in the order
// they were applied.
func (p Problem) Extensions() []grid.Direction {
	out := make([]grid.Direction, len(p.extensions))
	copy(out, p.extensions)

	return out
}

// Acceptable reports whether a Hamiltonian path between the problem's
// endpoints can exist at all: the endpoints must be color-compatible and
// not form a forbidden pair.
//
// Complexity: O(1).
func (p Problem) Acceptable() (bool, error) {
	compatible, err := p.g.ColorCompatible(p.start, p.end)
	if err != nil {
		return false, err
	}
	if !compatible {
		return false, nil
	}

	forbidden, err := p.g.Forbidden(p.start, p.end)
	if err != nil {
		return false, err
	}

	return !forbidden, nil
}
